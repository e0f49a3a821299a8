// Package simdops provides SIMD-accelerated vector operations over float64
// slices for batch pose arithmetic.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations.
// Function pointers allow swapping in a pure Go implementation for testing.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

// ops64 is package-level to avoid repeated allocation.
var ops64 = Ops{
	Scale: f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Generic returns pure Go implementations of the same operations.
func Generic() *Ops {
	return &Ops{
		Scale: scaleGeneric,
	}
}

func scaleGeneric(dst, a []float64, s float64) {
	for i, v := range a {
		dst[i] = v * s
	}
}
