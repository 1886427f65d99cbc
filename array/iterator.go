// Package array: forward read iterator for pointer-valued elements.

package array

// PtrIterator is a read-only forward cursor over an Array[*T], an array
// whose elements are pointers to owned objects. It borrows the array for its
// lifetime and never mutates it; the caller must not mutate or destroy the
// array while the iterator is in use.
//
// The iterator performs no bounds checking of its own: check AtEnd before
// calling Ptr or Value. Dereferencing past the end panics. A consumed
// iterator cannot be reset; construct a new one to traverse again.
type PtrIterator[T any] struct {
	arr *Array[*T]
	pos int
}

// NewPtrIterator returns an iterator bound to a, positioned at a.First().
func NewPtrIterator[T any](a *Array[*T]) *PtrIterator[T] {
	return &PtrIterator[T]{arr: a, pos: a.first}
}

// Next advances the cursor by one position. It performs no bounds check.
func (it *PtrIterator[T]) Next() { it.pos++ }

// AtEnd reports whether the cursor has moved past the array's last element.
func (it *PtrIterator[T]) AtEnd() bool { return it.pos > it.arr.last }

// Ptr returns the pointer element at the current position, for forwarding
// to the pointee's methods and fields.
func (it *PtrIterator[T]) Ptr() *T {
	return it.arr.data[it.pos-it.arr.first]
}

// Value returns the pointee of the element at the current position. To
// mutate the pointee, go through Ptr.
func (it *PtrIterator[T]) Value() T {
	return *it.arr.data[it.pos-it.arr.first]
}
