// Package rectarray_test: micro-benchmarks for the hot element and row
// operations.

package rectarray_test

import (
	"testing"

	"github.com/katalvlaran/gambase/rectarray"
)

func benchRect(b *testing.B, rows, cols int) *rectarray.RectArray[int] {
	b.Helper()
	r, err := rectarray.NewRect[int](rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			_ = r.Set(row, col, row*cols+col)
		}
	}

	return r
}

func BenchmarkGet(b *testing.B) {
	r := benchRect(b, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Get(32, 32)
	}
}

func BenchmarkSwapRows(b *testing.B) {
	r := benchRect(b, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.SwapRows(1, 64)
	}
}

func BenchmarkRotateUp(b *testing.B) {
	r := benchRect(b, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.RotateUp(1, 64)
	}
}

func BenchmarkRow(b *testing.B) {
	r := benchRect(b, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Row(32)
	}
}
