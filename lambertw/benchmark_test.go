// Copyright 2026 lamW Authors. SPDX-License-Identifier: Apache-2.0

package lambertw

import (
	"fmt"
	"testing"
)

var sink float64

func BenchmarkW0(b *testing.B) {
	for _, x := range []float64{1e-3, 0.5, 1e3, 1e100} {
		b.Run(fmt.Sprintf("x=%g", x), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sink = W0(x)
			}
		})
	}
}

func BenchmarkWm1(b *testing.B) {
	for _, x := range []float64{-0.3, -0.1, -1e-100} {
		b.Run(fmt.Sprintf("x=%g", x), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sink = Wm1(x)
			}
		})
	}
}

func BenchmarkSlice(b *testing.B) {
	for _, n := range []int{1024, 1 << 16, 1 << 20} {
		in := sampleInputs(n, 1)
		out := make([]float64, n)

		b.Run(fmt.Sprintf("sequential/n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(8 * n))
			for i := 0; i < b.N; i++ {
				W0Slice(in, out)
			}
		})

		b.Run(fmt.Sprintf("parallel/n=%d", n), func(b *testing.B) {
			pool := newTestPool(b, 0)
			b.SetBytes(int64(8 * n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ParallelW0(pool, in, out)
			}
		})
	}
}
