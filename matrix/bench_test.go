// Package matrix_test provides benchmarks for Hermitian kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/antidist/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{4, 16, 64}

// sinks to defeat dead-code elimination
var (
	sinkH *matrix.Hermitian
	sinkF float64
	sinkV []float64
)

func BenchmarkEmbedRoundTrip(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h := randomHermitian(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				back, err := matrix.FromEmbedding(h.Embed())
				if err != nil {
					b.Fatal(err)
				}
				sinkH = back
			}
		})
	}
}

func BenchmarkInner(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomHermitian(b, n, 1)
			y := randomHermitian(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.Inner(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkEigenvalues(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h := randomHermitian(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.Eigenvalues(h)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
