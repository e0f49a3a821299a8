package engine

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// SlerpWeights returns the coefficients (ws, wt) such that ws*qs + wt*qt is
// the spherical interpolation of qs toward qt at weight, given their dot
// product.
//
// A negative dot product means qt lies on the far hemisphere; wt is negated
// so the blend follows the shorter arc to -qt, which is the same orientation.
// When |cos(θ/2)| exceeds nearParallelCos the sine ratio is ill-conditioned
// and plain linear weights are used instead.
func SlerpWeights(t mathutil.Trig, cosHalfTheta, weight, nearParallelCos float64) (ws, wt float64) {
	sign := 1.0
	if cosHalfTheta < 0 {
		sign = -1.0
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta > nearParallelCos {
		ws = 1 - weight
		wt = weight
	} else {
		sinHalfTheta := math.Sqrt(1 - cosHalfTheta*cosHalfTheta)
		halfTheta := float64(mathutil.Atan2(t, sinHalfTheta, cosHalfTheta))
		rcp := 1 / sinHalfTheta
		ws = t.SinS(mathutil.Angle((1-weight)*halfTheta)) * rcp
		wt = t.SinS(mathutil.Angle(weight*halfTheta)) * rcp
	}

	return ws, wt * sign
}

// Slerp spherically interpolates between unit quaternions qs and qt. The
// result is not normalized; [QuatToEuler] accounts for its length.
func Slerp(t mathutil.Trig, qs, qt quat.Number, weight, nearParallelCos float64) quat.Number {
	ws, wt := SlerpWeights(t, dot(qs, qt), weight, nearParallelCos)
	return quat.Add(quat.Scale(ws, qs), quat.Scale(wt, qt))
}

// Lerp blends quaternion components linearly without normalizing.
func Lerp(qs, qt quat.Number, weight float64) quat.Number {
	return quat.Add(quat.Scale(1-weight, qs), quat.Scale(weight, qt))
}
