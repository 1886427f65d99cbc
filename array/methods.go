// Package array: lookup, search and mutation.
//
// Every indexed operation validates first and mutates only after the check
// passes, so a failed call leaves the array exactly as it was. Insertion and
// removal follow the scoped-allocation pattern: size the replacement block
// exactly, populate it, then adopt it. The old block is never aliased by
// the new one.

package array

import "fmt"

// Len returns the number of elements, Last()-First()+1.
// Complexity: O(1).
func (a *Array[T]) Len() int { return a.last - a.first + 1 }

// First returns the lowest valid index.
func (a *Array[T]) First() int { return a.first }

// Last returns the highest valid index. For an empty array Last() == First()-1.
func (a *Array[T]) Last() int { return a.last }

// Get returns the element at index i.
// Returns ErrIndex if i lies outside [First, Last].
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return a.data[i-a.first], nil
}

// At returns a pointer to the element at index i, the mutable counterpart of
// Get. The pointer stays valid until the next insertion or removal, and
// across a same-shape Assign (see Assign).
// Returns ErrIndex if i lies outside [First, Last].
// Complexity: O(1).
func (a *Array[T]) At(i int) (*T, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}

	return &a.data[i-a.first], nil
}

// Set stores v at index i.
// Returns ErrIndex if i lies outside [First, Last].
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.data[i-a.first] = v

	return nil
}

// Find returns the lowest index whose element equals v, scanning from First
// to Last. When no element matches it returns the sentinel First()-1, a
// value that can never be a valid index. Callers may rely on the sentinel
// being exactly First()-1, not a fixed constant.
// Complexity: O(n).
func (a *Array[T]) Find(v T) int {
	for i := range a.data {
		if a.data[i] == v {
			return a.first + i
		}
	}

	return a.first - 1
}

// Contains reports whether v occurs in the array.
// Complexity: O(n).
func (a *Array[T]) Contains(v T) bool {
	return a.Find(v) != a.first-1
}

// InsertAt places v at index n, shifting the elements at n and above up by
// one index. The valid targets are [First, Last+1]: Last+1 appends. Returns
// the index used, or ErrIndex (with no mutation and no allocation) when n
// lies outside that range.
//
// Algorithm:
//  1. Validate n against [first, last+1].
//  2. Allocate a replacement block one element longer, same origin.
//  3. Copy the elements below n at their positions.
//  4. Place v at n.
//  5. Copy the elements at n and above, shifted up by one.
//  6. Adopt the block and extend last.
//
// Complexity: O(n) time and space.
func (a *Array[T]) InsertAt(v T, n int) (int, error) {
	if n < a.first || n > a.last+1 {
		return 0, fmt.Errorf("%w: insert index %d outside [%d, %d]", ErrIndex, n, a.first, a.last+1)
	}
	fresh := make([]T, a.Len()+1)
	k := n - a.first
	copy(fresh[:k], a.data[:k])
	fresh[k] = v
	copy(fresh[k+1:], a.data[k:])
	a.data = fresh
	a.last++

	return n, nil
}

// Append places v after the current last element and returns its index,
// which is guaranteed to be the new highest index.
// Complexity: O(n).
func (a *Array[T]) Append(v T) int {
	n, _ := a.InsertAt(v, a.last+1)

	return n
}

// Insert places v at index n, clamped into the valid target range: an index
// below First inserts at the front, an index above Last+1 appends. Returns
// the index actually used.
// Complexity: O(n).
func (a *Array[T]) Insert(v T, n int) int {
	if n < a.first {
		n = a.first
	} else if n > a.last+1 {
		n = a.last + 1
	}
	idx, _ := a.InsertAt(v, n)

	return idx
}

// Remove deletes the element at index n, shifting the elements above it down
// by one index, and returns the removed value. The origin is preserved and
// the storage shrinks by exactly one element, to none when the array
// empties. Returns ErrIndex, with no mutation, when n lies outside
// [First, Last].
// Complexity: O(n) time and space.
func (a *Array[T]) Remove(n int) (T, error) {
	var zero T
	if n < a.first || n > a.last {
		return zero, fmt.Errorf("%w: remove index %d outside [%d, %d]", ErrIndex, n, a.first, a.last)
	}
	out := a.data[n-a.first]
	var fresh []T
	if a.Len() > 1 {
		fresh = make([]T, a.Len()-1)
		k := n - a.first
		copy(fresh[:k], a.data[:k])
		copy(fresh[k:], a.data[k+1:])
	}
	a.data = fresh
	a.last--

	return out, nil
}

// checkIndex validates membership of i in [first, last].
func (a *Array[T]) checkIndex(i int) error {
	if i < a.first || i > a.last {
		return fmt.Errorf("%w: index %d outside [%d, %d]", ErrIndex, i, a.first, a.last)
	}

	return nil
}
