package engine

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// Quaternion components map onto quat.Number as
// w = Real, x = Imag, y = Jmag, z = Kmag.

// EulerToQuat converts a rotation triple to a unit quaternion.
//
// Each angle is halved with integer division before the trig lookup, exactly
// as the host does, then combined with the intrinsic X-Y-Z product formula:
//
//	w = cx*cy*cz + sx*sy*sz
//	x = sx*cy*cz - cx*sy*sz
//	y = cx*sy*cz + sx*cy*sz
//	z = cx*cy*sz - sx*sy*cz
func EulerToQuat(t mathutil.Trig, r Rotation) quat.Number {
	hx := r.X / halfAngleDivisor
	hy := r.Y / halfAngleDivisor
	hz := r.Z / halfAngleDivisor

	cx, sx := t.CosS(hx), t.SinS(hx)
	cy, sy := t.CosS(hy), t.SinS(hy)
	cz, sz := t.CosS(hz), t.SinS(hz)

	return quat.Number{
		Real: cx*cy*cz + sx*sy*sz,
		Imag: sx*cy*cz - cx*sy*sz,
		Jmag: cx*sy*cz + sx*cy*sz,
		Kmag: cx*cy*sz - sx*sy*cz,
	}
}

// QuatToEuler converts a quaternion of any non-zero length back to a
// rotation triple.
//
// The squared norm is clamped to at least 0.001 before it is inverted. Only
// products of component pairs appear below, so dividing by |q|² normalizes
// without a square root.
//
// When |sin(pitch)| reaches 1 the pitch is pinned to the pole, X is taken
// from atan2(x, w) in the standard (y, x) order, i.e. the direction of the
// vector (w, x), and Z is forced to zero: roll is not recoverable there.
func QuatToEuler(t mathutil.Trig, q quat.Number) Rotation {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	mult := normSquared(q)
	if mult < minNormSquared {
		mult = minNormSquared
	}
	mult = eulerScale / mult

	sinPitch := mult * (w*y - x*z)

	var r Rotation
	switch {
	case sinPitch >= singularityLimit:
		r.Y = mathutil.QuarterTurn
	case sinPitch <= -singularityLimit:
		r.Y = mathutil.ThreeQuarterTurn
	default:
		r.X = mathutil.Atan2(t, mult*(w*x+y*z), 1-mult*(x*x+y*y))
		r.Y = mathutil.Atan2(t, sinPitch, math.Sqrt(max(0, 1-sinPitch*sinPitch)))
		r.Z = mathutil.Atan2(t, mult*(w*z+x*y), 1-mult*(y*y+z*z))
		return r
	}

	r.X = mathutil.Atan2(t, x, w)
	r.Z = 0
	return r
}

// normSquared returns w² + x² + y² + z².
func normSquared(q quat.Number) float64 {
	return q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
}

// dot returns the 4D dot product of two quaternions.
func dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}
