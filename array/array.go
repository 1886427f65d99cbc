// Package array: Array type, constructors and value semantics.
//
// This file declares the Array type and its lifecycle operations:
// construction with a length or an explicit [lo, hi] range, deep copy via
// Clone, element-wise assignment via Assign (with the storage-reuse
// contract), and shape-sensitive equality.

package array

import "fmt"

// Array is a bounds-checked dynamic array addressed by the inclusive index
// range [first, last]. The origin (first) is arbitrary; last == first-1
// denotes an empty array, and an empty array holds no backing storage.
//
// Internally the elements live in a zero-based slice: public index i maps to
// data[i-first]. The slice is owned exclusively by its Array and is never
// exposed; mutating operations swap in a freshly allocated block.
//
// The zero value is not ready for use; construct with New or NewRange.
type Array[T comparable] struct {
	first int
	last  int
	data  []T // zero-based backing; element i lives at data[i-first]
}

// New constructs an array of the given length with origin 1, so the valid
// indices are 1..length. A length of 0 yields an empty array with no
// allocation. Returns ErrRange if length is negative.
// Complexity: O(length).
func New[T comparable](length int) (*Array[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrRange, length)
	}
	a := &Array[T]{first: 1, last: length}
	if length > 0 {
		a.data = make([]T, length)
	}

	return a, nil
}

// NewRange constructs an array spanning the inclusive index range [lo, hi],
// holding hi-lo+1 zero-valued elements. hi+1 == lo yields a valid empty
// array; hi+1 < lo returns ErrRange.
// Complexity: O(hi-lo+1).
func NewRange[T comparable](lo, hi int) (*Array[T], error) {
	if hi+1 < lo {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrRange, lo, hi)
	}
	a := &Array[T]{first: lo, last: hi}
	if hi >= lo {
		a.data = make([]T, hi-lo+1)
	}

	return a, nil
}

// Clone returns a deep copy: same shape, every element copied in index order.
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{first: a.first, last: a.last}
	if len(a.data) > 0 {
		c.data = make([]T, len(a.data))
		copy(c.data, a.data)
	}

	return c
}

// Assign makes the receiver an element-wise copy of src. Assigning an array
// to itself is a no-op. Storage is reallocated only when the shapes differ
// (or the receiver holds none); when the shapes already match, the existing
// backing storage is reused. The reuse is a contract, not an optimization:
// element pointers obtained from At before a same-shape Assign still address
// the live elements afterwards, which composite structures built on Array
// depend on.
// Complexity: O(len(src)).
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src {
		return
	}
	if a.data == nil || a.first != src.first || a.last != src.last {
		a.first, a.last = src.first, src.last
		if src.Len() > 0 {
			a.data = make([]T, src.Len())
		} else {
			a.data = nil
		}
	}
	copy(a.data, src.data)
}

// Equal reports whether b has exactly the same shape and equal elements at
// every index. Arrays of different shape are unequal regardless of contents;
// a nil argument is unequal to everything.
// Complexity: O(n).
func (a *Array[T]) Equal(b *Array[T]) bool {
	if b == nil {
		return false
	}
	if a.first != b.first || a.last != b.last {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
