package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

// TestScale_MatchesGeneric tests that the SIMD and pure Go paths agree on
// pose-sized inputs, including lengths that are not a multiple of the
// vector width.
func TestScale_MatchesGeneric(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 60, 63} {
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(i*1024 - 32768)
		}

		want := make([]float64, n)
		got := make([]float64, n)
		Generic().Scale(want, a, 0.37)
		Float64Ops().Scale(got, a, 0.37)
		assert.InDeltaSlice(t, want, got, 1e-9, "length %d", n)
	}
}

// BenchmarkDirectF64Scale measures direct SIMD call overhead.
func BenchmarkDirectF64Scale(b *testing.B) {
	a := make([]float64, 63)
	dst := make([]float64, 63)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.Scale(dst, a, 0.5)
	}
}

// BenchmarkIndirectF64Scale measures indirect call through Ops struct.
func BenchmarkIndirectF64Scale(b *testing.B) {
	ops := Float64Ops()
	a := make([]float64, 63)
	dst := make([]float64, 63)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 0.5)
	}
}
