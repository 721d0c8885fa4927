// SPDX-License-Identifier: MIT
// Package invcache_test provides benchmarks contrasting cached and uncached
// inverse resolution, using deterministic random fill for Dense matrices.
package invcache_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mmcera/matcache/invcache"
	"github.com/mmcera/matcache/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

// benchDense builds an n×n diagonally dominant Dense (always invertible)
// from a fixed seed, so every run factors the same numbers.
func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()
			if i == j {
				v += float64(n) // dominance keeps every pivot away from zero
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkResolveInverse_Hit(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c := invcache.New(benchDense(b, n, 1337))
			// Warm the cache once; every timed iteration is a pure hit.
			if _, err := invcache.ResolveInverse(c); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := invcache.ResolveInverse(c)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkResolveInverse_Miss(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			M := benchDense(b, n, 4242)
			c := invcache.New(M)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Re-setting the matrix forces a full O(n³) recomputation.
				c.SetMatrix(M)
				m, err := invcache.ResolveInverse(c)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
