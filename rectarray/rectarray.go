// Package rectarray: RectArray type, constructors and value semantics.

package rectarray

import "fmt"

// RectArray is a bounds-checked two-dimensional array addressed by the
// inclusive ranges [minRow, maxRow] × [minCol, maxCol]. Either axis may be
// empty (max == min-1); an empty array holds no backing storage.
//
// Elements live in one flat row-major zero-based slice: (r, c) maps to
// data[(r-minRow)*NumCols() + (c-minCol)]. The slice is owned exclusively
// and never exposed.
//
// The zero value is not ready for use; construct with NewRect or
// NewRectRange.
type RectArray[T comparable] struct {
	minRow, maxRow int
	minCol, maxCol int
	data           []T // row-major zero-based backing
}

// NewRect constructs a rows × cols array with both origins fixed at 1.
// Either count may be 0 (an empty axis, no allocation). Returns ErrRange
// if either count is negative.
// Complexity: O(rows·cols).
func NewRect[T comparable](rows, cols int) (*RectArray[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrRange, rows, cols)
	}

	return NewRectRange[T](1, rows, 1, cols)
}

// NewRectRange constructs an array spanning [minRow, maxRow] rows and
// [minCol, maxCol] columns, all elements zero-valued. Returns ErrRange if
// either axis range is inverted (max+1 < min).
// Complexity: O(rows·cols).
func NewRectRange[T comparable](minRow, maxRow, minCol, maxCol int) (*RectArray[T], error) {
	if maxRow+1 < minRow {
		return nil, fmt.Errorf("%w: rows [%d, %d]", ErrRange, minRow, maxRow)
	}
	if maxCol+1 < minCol {
		return nil, fmt.Errorf("%w: columns [%d, %d]", ErrRange, minCol, maxCol)
	}
	r := &RectArray[T]{minRow: minRow, maxRow: maxRow, minCol: minCol, maxCol: maxCol}
	if n := r.NumRows() * r.NumCols(); n > 0 {
		r.data = make([]T, n)
	}

	return r, nil
}

// Clone returns a deep copy: same shape on both axes, every element copied.
// Complexity: O(rows·cols).
func (r *RectArray[T]) Clone() *RectArray[T] {
	c := &RectArray[T]{minRow: r.minRow, maxRow: r.maxRow, minCol: r.minCol, maxCol: r.maxCol}
	if len(r.data) > 0 {
		c.data = make([]T, len(r.data))
		copy(c.data, r.data)
	}

	return c
}

// Assign makes the receiver an element-wise copy of src. Self-assignment is
// a no-op. As with array.Array, storage is reallocated only when the shapes
// differ or the receiver holds none; a same-shape assignment reuses the
// existing block.
// Complexity: O(rows·cols).
func (r *RectArray[T]) Assign(src *RectArray[T]) {
	if r == src {
		return
	}
	if r.data == nil || !r.sameShape(src) {
		r.minRow, r.maxRow = src.minRow, src.maxRow
		r.minCol, r.maxCol = src.minCol, src.maxCol
		if len(src.data) > 0 {
			r.data = make([]T, len(src.data))
		} else {
			r.data = nil
		}
	}
	copy(r.data, src.data)
}

// Equal reports whether b has exactly the same row and column ranges and
// equal elements at every coordinate. A nil argument is unequal to
// everything.
// Complexity: O(rows·cols).
func (r *RectArray[T]) Equal(b *RectArray[T]) bool {
	if b == nil || !r.sameShape(b) {
		return false
	}
	for i := range r.data {
		if r.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

func (r *RectArray[T]) sameShape(b *RectArray[T]) bool {
	return r.minRow == b.minRow && r.maxRow == b.maxRow &&
		r.minCol == b.minCol && r.maxCol == b.maxCol
}
