// Package testutil provides reusable test helper functions for pose blending tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"

	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// Default tolerances for various test scenarios.
const (
	// RoundTripTolerance is the Euler→quaternion→Euler error budget in binary
	// angle units. Both trig tables quantize, so a few table steps are allowed.
	RoundTripTolerance = 0x100

	// QuatTolerance is the per-component tolerance for normalized quaternions.
	QuatTolerance = 5e-3
)

// AssertAngleNear verifies that two binary angles differ by at most tolerance
// units, measured the short way around.
func AssertAngleNear(t *testing.T, expected, actual mathutil.Angle, tolerance uint16, msgAndArgs ...any) bool {
	t.Helper()
	diff := mathutil.Delta(expected, actual).Abs()
	if diff > tolerance {
		return assert.Fail(t, fmt.Sprintf("angle out of tolerance: expected %#04x, got %#04x (diff %d > %d)",
			expected.Raw(), actual.Raw(), diff, tolerance), msgAndArgs...)
	}
	return true
}

// AssertAxesNear verifies each of three angles, measured the short way around.
func AssertAxesNear(t *testing.T, expected, actual [3]mathutil.Angle, tolerance uint16, msgAndArgs ...any) bool {
	t.Helper()
	ok := true
	for i := range expected {
		diff := mathutil.Delta(expected[i], actual[i]).Abs()
		if diff > tolerance {
			assert.Fail(t, fmt.Sprintf("axis %d out of tolerance: expected %#04x, got %#04x (diff %d > %d)",
				i, expected[i].Raw(), actual[i].Raw(), diff, tolerance), msgAndArgs...)
			ok = false
		}
	}
	return ok
}

// AssertQuatEquivalent verifies that two quaternions represent the same
// orientation: equal after normalization, up to sign.
func AssertQuatEquivalent(t *testing.T, expected, actual quat.Number, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	e := Normalize(expected)
	a := Normalize(actual)
	if e.Real*a.Real+e.Imag*a.Imag+e.Jmag*a.Jmag+e.Kmag*a.Kmag < 0 {
		a = quat.Scale(-1, a)
	}

	ec := []float64{e.Real, e.Imag, e.Jmag, e.Kmag}
	ac := []float64{a.Real, a.Imag, a.Jmag, a.Kmag}
	for i := range ec {
		if !scalar.EqualWithinAbs(ec[i], ac[i], tolerance) {
			return assert.Fail(t, fmt.Sprintf("quaternions not equivalent: expected %v, got %v (component %d)",
				e, a, i), msgAndArgs...)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no quaternion component is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, q quat.Number, msgAndArgs ...any) bool {
	t.Helper()
	if quat.IsNaN(q) {
		return assert.Fail(t, fmt.Sprintf("found NaN in %v", q), msgAndArgs...)
	}
	if quat.IsInf(q) {
		return assert.Fail(t, fmt.Sprintf("found Inf in %v", q), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

// Normalize returns q scaled to unit length.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) {
		return q
	}
	return quat.Scale(1/n, q)
}
