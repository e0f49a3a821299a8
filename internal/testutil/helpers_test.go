package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"

	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// TestAssertQuatEquivalent tests that sign and scale do not affect
// equivalence, and that trailing message arguments are accepted.
func TestAssertQuatEquivalent(t *testing.T) {
	q := quat.Number{Real: 0.5, Imag: 0.5, Jmag: -0.5, Kmag: 0.5}

	tests := []struct {
		name   string
		actual quat.Number
	}{
		{"Same", q},
		{"Negated", quat.Scale(-1, q)},
		{"Scaled", quat.Scale(2.5, q)},
		{"NegatedScaled", quat.Scale(-0.1, q)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertQuatEquivalent(t, q, tt.actual, 1e-12, "case %s", tt.name)
		})
	}
}

// TestAssertAxesNear tests tolerance measured across the 0x0000/0xFFFF seam.
func TestAssertAxesNear(t *testing.T) {
	expected := [3]mathutil.Angle{mathutil.FromRaw(0xFFF0), 0, mathutil.HalfTurn}
	actual := [3]mathutil.Angle{mathutil.FromRaw(0x0008), mathutil.FromRaw(0xFFFC), mathutil.FromRaw(0x7FF8)}
	AssertAxesNear(t, expected, actual, 0x18, "joint %d", 1)
	AssertAngleNear(t, expected[0], actual[0], 0x18, "seam %#04x", 0xFFF0)
}

// TestAssertInRange tests the inclusive bounds.
func TestAssertInRange(t *testing.T) {
	AssertInRange(t, 0.5, 0.5, 0.5)
	AssertInRange(t, 0.25, 0, 1, "value %v", 0.25)
}

// TestNormalize tests unit scaling and degenerate inputs.
func TestNormalize(t *testing.T) {
	n := Normalize(quat.Number{Real: 3, Kmag: 4})
	AssertQuatEquivalent(t, quat.Number{Real: 0.6, Kmag: 0.8}, n, 1e-15)
	AssertNoNaNOrInf(t, n)

	zero := Normalize(quat.Number{})
	AssertNoNaNOrInf(t, zero)
	AssertInRange(t, quat.Abs(zero), 0, 0)

	assert.True(t, quat.IsNaN(Normalize(quat.Number{Real: math.NaN()})))
}
