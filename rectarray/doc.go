// Package rectarray provides a two-dimensional, bounds-checked rectangular
// array, the 2-D sibling of gambase/array.
//
// A RectArray[T] owns a rows × columns block of elements addressed by two
// inclusive index ranges, [MinRow, MaxRow] and [MinCol, MaxCol], each with
// its own arbitrary origin. Strategic-form payoff tables and similar
// row/column structures index from 1 on both axes; RectArray keeps that
// addressing explicit instead of translating at every call site.
//
// Core behaviors:
//
//   - Strict bounds checking on both coordinates; a failed check returns
//     ErrIndex and mutates nothing.
//   - Whole-row and whole-column extraction into array.Array values whose
//     origin matches the opposite axis, and the corresponding SetRow and
//     SetColumn with exact shape matching (ErrShape otherwise).
//   - Row and column exchange, and cyclic row rotation within a window
//     (RotateUp / RotateDown).
//   - Value semantics mirroring array.Array: Clone deep-copies, Assign
//     copies element-wise and reuses storage across same-shape assignment,
//     Equal compares shape first and contents second.
//
// Storage is a single flat row-major block, never exposed. RectArrays are
// not safe for concurrent mutation.
//
// Errors:
//
//	ErrIndex - row or column index outside its valid range.
//	ErrRange - construction with an inverted axis range.
//	ErrShape - SetRow/SetColumn source whose shape does not match the axis.
package rectarray
