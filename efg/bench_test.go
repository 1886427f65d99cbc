// Package efg_test: parse benchmark.

package efg_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gambase/efg"
)

func BenchmarkReadGame(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := efg.ReadGame(strings.NewReader(coinFlip)); err != nil {
			b.Fatal(err)
		}
	}
}
