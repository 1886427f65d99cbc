// Package rectarray: accessors, element access and row/column operations.

package rectarray

import (
	"fmt"

	"github.com/katalvlaran/gambase/array"
)

// NumRows returns the number of rows, maxRow - minRow + 1.
func (r *RectArray[T]) NumRows() int { return r.maxRow - r.minRow + 1 }

// NumCols returns the number of columns, maxCol - minCol + 1.
func (r *RectArray[T]) NumCols() int { return r.maxCol - r.minCol + 1 }

// MinRow returns the lowest valid row index.
func (r *RectArray[T]) MinRow() int { return r.minRow }

// MaxRow returns the highest valid row index.
func (r *RectArray[T]) MaxRow() int { return r.maxRow }

// MinCol returns the lowest valid column index.
func (r *RectArray[T]) MinCol() int { return r.minCol }

// MaxCol returns the highest valid column index.
func (r *RectArray[T]) MaxCol() int { return r.maxCol }

// Get returns the element at (row, col). Returns ErrIndex if either
// coordinate falls outside its axis range.
// Complexity: O(1).
func (r *RectArray[T]) Get(row, col int) (T, error) {
	if err := r.check(row, col); err != nil {
		var zero T
		return zero, err
	}

	return r.data[r.index(row, col)], nil
}

// At returns a pointer to the element at (row, col), valid until the array
// next reallocates. Returns ErrIndex if either coordinate is out of range.
// Complexity: O(1).
func (r *RectArray[T]) At(row, col int) (*T, error) {
	if err := r.check(row, col); err != nil {
		return nil, err
	}

	return &r.data[r.index(row, col)], nil
}

// Set stores v at (row, col). Returns ErrIndex if either coordinate is out
// of range; the array is unchanged on error.
// Complexity: O(1).
func (r *RectArray[T]) Set(row, col int, v T) error {
	if err := r.check(row, col); err != nil {
		return err
	}
	r.data[r.index(row, col)] = v

	return nil
}

// Row copies row into a fresh one-dimensional array spanning
// [MinCol, MaxCol]. Returns ErrIndex if row is out of range.
// Complexity: O(cols).
func (r *RectArray[T]) Row(row int) (*array.Array[T], error) {
	if err := r.checkRow(row); err != nil {
		return nil, err
	}
	out, _ := array.NewRange[T](r.minCol, r.maxCol)
	for c := r.minCol; c <= r.maxCol; c++ {
		_ = out.Set(c, r.data[r.index(row, c)])
	}

	return out, nil
}

// Column copies column col into a fresh one-dimensional array spanning
// [MinRow, MaxRow]. Returns ErrIndex if col is out of range.
// Complexity: O(rows).
func (r *RectArray[T]) Column(col int) (*array.Array[T], error) {
	if err := r.checkCol(col); err != nil {
		return nil, err
	}
	out, _ := array.NewRange[T](r.minRow, r.maxRow)
	for row := r.minRow; row <= r.maxRow; row++ {
		_ = out.Set(row, r.data[r.index(row, col)])
	}

	return out, nil
}

// SetRow overwrites row with the elements of src. src must span exactly
// [MinCol, MaxCol]; any other shape returns ErrShape. Returns ErrIndex if
// row is out of range. The array is unchanged on error.
// Complexity: O(cols).
func (r *RectArray[T]) SetRow(row int, src *array.Array[T]) error {
	if err := r.checkRow(row); err != nil {
		return err
	}
	if src.First() != r.minCol || src.Last() != r.maxCol {
		return fmt.Errorf("%w: row spans [%d, %d], source spans [%d, %d]",
			ErrShape, r.minCol, r.maxCol, src.First(), src.Last())
	}
	for c := r.minCol; c <= r.maxCol; c++ {
		v, _ := src.Get(c)
		r.data[r.index(row, c)] = v
	}

	return nil
}

// SetColumn overwrites column col with the elements of src. src must span
// exactly [MinRow, MaxRow]; any other shape returns ErrShape. Returns
// ErrIndex if col is out of range. The array is unchanged on error.
// Complexity: O(rows).
func (r *RectArray[T]) SetColumn(col int, src *array.Array[T]) error {
	if err := r.checkCol(col); err != nil {
		return err
	}
	if src.First() != r.minRow || src.Last() != r.maxRow {
		return fmt.Errorf("%w: column spans [%d, %d], source spans [%d, %d]",
			ErrShape, r.minRow, r.maxRow, src.First(), src.Last())
	}
	for row := r.minRow; row <= r.maxRow; row++ {
		v, _ := src.Get(row)
		r.data[r.index(row, col)] = v
	}

	return nil
}

// SwapRows exchanges rows a and b element by element. Swapping a row with
// itself is a no-op. Returns ErrIndex if either row is out of range.
// Complexity: O(cols).
func (r *RectArray[T]) SwapRows(a, b int) error {
	if err := r.checkRow(a); err != nil {
		return err
	}
	if err := r.checkRow(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	ia, ib := r.index(a, r.minCol), r.index(b, r.minCol)
	for c := 0; c < r.NumCols(); c++ {
		r.data[ia+c], r.data[ib+c] = r.data[ib+c], r.data[ia+c]
	}

	return nil
}

// SwapColumns exchanges columns a and b element by element. Swapping a
// column with itself is a no-op. Returns ErrIndex if either column is out
// of range.
// Complexity: O(rows).
func (r *RectArray[T]) SwapColumns(a, b int) error {
	if err := r.checkCol(a); err != nil {
		return err
	}
	if err := r.checkCol(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	for row := r.minRow; row <= r.maxRow; row++ {
		ia, ib := r.index(row, a), r.index(row, b)
		r.data[ia], r.data[ib] = r.data[ib], r.data[ia]
	}

	return nil
}

// RotateUp cyclically shifts the rows of the window [lo, hi] one position
// toward lo: row lo+1 moves to lo, and the old row lo wraps around to hi.
// Returns ErrIndex if the window is inverted or not contained in
// [MinRow, MaxRow].
// Complexity: O(windowRows·cols).
func (r *RectArray[T]) RotateUp(lo, hi int) error {
	if err := r.checkWindow(lo, hi); err != nil {
		return err
	}
	cols := r.NumCols()
	top := make([]T, cols)
	copy(top, r.data[r.index(lo, r.minCol):r.index(lo, r.minCol)+cols])
	for row := lo; row < hi; row++ {
		dst := r.index(row, r.minCol)
		src := r.index(row+1, r.minCol)
		copy(r.data[dst:dst+cols], r.data[src:src+cols])
	}
	bottom := r.index(hi, r.minCol)
	copy(r.data[bottom:bottom+cols], top)

	return nil
}

// RotateDown cyclically shifts the rows of the window [lo, hi] one position
// toward hi: row hi-1 moves to hi, and the old row hi wraps around to lo.
// Returns ErrIndex if the window is inverted or not contained in
// [MinRow, MaxRow].
// Complexity: O(windowRows·cols).
func (r *RectArray[T]) RotateDown(lo, hi int) error {
	if err := r.checkWindow(lo, hi); err != nil {
		return err
	}
	cols := r.NumCols()
	bottom := make([]T, cols)
	copy(bottom, r.data[r.index(hi, r.minCol):r.index(hi, r.minCol)+cols])
	for row := hi; row > lo; row-- {
		dst := r.index(row, r.minCol)
		src := r.index(row-1, r.minCol)
		copy(r.data[dst:dst+cols], r.data[src:src+cols])
	}
	top := r.index(lo, r.minCol)
	copy(r.data[top:top+cols], bottom)

	return nil
}

// index maps (row, col) onto the flat backing slice. Callers validate first.
func (r *RectArray[T]) index(row, col int) int {
	return (row-r.minRow)*r.NumCols() + (col - r.minCol)
}

func (r *RectArray[T]) check(row, col int) error {
	if err := r.checkRow(row); err != nil {
		return err
	}

	return r.checkCol(col)
}

func (r *RectArray[T]) checkRow(row int) error {
	if row < r.minRow || row > r.maxRow {
		return fmt.Errorf("%w: row %d not in [%d, %d]", ErrIndex, row, r.minRow, r.maxRow)
	}

	return nil
}

func (r *RectArray[T]) checkCol(col int) error {
	if col < r.minCol || col > r.maxCol {
		return fmt.Errorf("%w: column %d not in [%d, %d]", ErrIndex, col, r.minCol, r.maxCol)
	}

	return nil
}

func (r *RectArray[T]) checkWindow(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: inverted row window [%d, %d]", ErrIndex, lo, hi)
	}
	if err := r.checkRow(lo); err != nil {
		return err
	}

	return r.checkRow(hi)
}
