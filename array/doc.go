// Package array provides a bounds-checked, arbitrarily-indexed dynamic
// array, the foundational container of gambase.
//
// An Array[T] owns a contiguous run of elements addressed by an inclusive
// integer range [First, Last]. The origin is not fixed at 0 or 1: game-theoretic
// code indexes players, actions and outcomes from 1 (or any other base), and
// Array carries that origin through every operation instead of forcing a
// zero-based translation onto callers.
//
// Core behaviors:
//
//   - Strict bounds checking: every indexed read, write, insertion and removal
//     validates its index first and returns ErrIndex without mutating anything
//     when the check fails.
//   - Exact resize: insertion and removal reallocate to the exact new length,
//     preserving the origin; an empty array holds no backing storage at all.
//   - Value semantics: Clone deep-copies; Assign copies element-wise and, when
//     the shapes already match, reuses the existing backing storage, a
//     documented contract that composite structures may rely on (element
//     pointers taken via At remain live across a same-shape Assign).
//   - Linear search: Find reports the first matching index, or the sentinel
//     First()-1 when absent; the sentinel tracks the origin, it is never a
//     fixed constant.
//
// PtrIterator[T] complements Array for the common case where elements are
// themselves pointers to owned objects: a read-only forward cursor with
// AtEnd/Next/Ptr/Value, borrowing the array without ever mutating it.
//
// Arrays are not safe for concurrent mutation; an iterator holds a live,
// unsynchronized view of its array for its entire lifetime.
//
// Errors:
//
//	ErrIndex - index outside the valid range for the operation.
//	ErrRange - construction with an inverted index range.
package array
