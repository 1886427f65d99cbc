// Package array_test provides benchmarks for Array operations.
package array_test

import (
	"testing"

	"github.com/katalvlaran/gambase/array"
)

// BenchmarkAppendRemove measures one grow/shrink cycle at a steady size,
// exercising the exact-resize reallocation on both sides.
func BenchmarkAppendRemove(b *testing.B) {
	a, _ := array.New[int](64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append(i)
		_, _ = a.Remove(a.Last())
	}
}

// BenchmarkInsertFront measures the worst-case insertion point: every
// existing element shifts up by one.
func BenchmarkInsertFront(b *testing.B) {
	a, _ := array.New[int](256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Insert(i, a.First())
		_, _ = a.Remove(a.First())
	}
}

// BenchmarkGet measures the checked read path.
func BenchmarkGet(b *testing.B) {
	a, _ := array.New[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Get(1 + i%1024)
	}
}

// BenchmarkFind measures the linear scan over a miss (full traversal).
func BenchmarkFind(b *testing.B) {
	a, _ := array.New[int](1024)
	for i := 1; i <= 1024; i++ {
		_ = a.Set(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Find(-1)
	}
}

// BenchmarkAssignSameShape measures the reuse path: no allocation expected.
func BenchmarkAssignSameShape(b *testing.B) {
	src, _ := array.New[int](512)
	dst, _ := array.New[int](512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.Assign(src)
	}
}
