// Package gambase is your in-memory toolkit for bounds-checked,
// arbitrarily-indexed containers — from the core one-dimensional array to
// rectangular tables and the extensive-form game trees built on them.
//
// 🚀 What is gambase?
//
//	A modern, generics-first library that brings together:
//		• Core primitives: arrays addressed by any inclusive [first, last] range
//		• Safe mutation: every index validated before anything changes
//		• Value semantics: Clone, Assign with storage reuse, deep Equal
//		• Search: Find with an origin-relative sentinel, Contains
//		• Pointer iteration: forward read cursors over pointer-element arrays
//		• 2-D tables: per-axis origins, row/column extraction, swaps & rotations
//		• Game trees: an exact-rational reader for extensive-form savefiles
//
// ✨ Why choose gambase?
//
//   - Beginner-friendly – a small API with names that say what they do
//   - Rock-solid guarantees – failed calls never leave partial state behind
//   - Origin-honest – indices mean what the caller said, not slot positions
//   - Exact – payoffs and probabilities arrive as big.Rat, never floats
//
// Under the hood, everything is organized under three subpackages:
//
//	array/     — the bounds-checked Array[T] with arbitrary origin + PtrIterator
//	rectarray/ — the two-dimensional RectArray[T] with per-axis origins
//	efg/       — the extensive-form game savefile reader layered on both
//
// Quick example:
//
//	a, _ := array.NewRange[int](5, 7) // indices 5, 6, 7
//	a.Set(5, 10)
//	a.Append(40)                      // lives at index 8 now
//	fmt.Println(a.Find(40))           // 8
//	fmt.Println(a.Find(99))           // 4, one before First()
//
//	go get github.com/katalvlaran/gambase
package gambase
