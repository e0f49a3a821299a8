// Package engine implements the per-joint blending algorithms: linear
// per-axis interpolation and quaternion slerp over binary angles.
package engine

import (
	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// Rotation is a joint's local rotation as three binary angles, applied in
// X, Y, Z order. The root joint of a pose stores its translation in the same
// layout; such a triple must never be interpreted as a rotation.
type Rotation struct {
	X, Y, Z mathutil.Angle
}

// Sub returns the per-axis wraparound delta r - o.
func (r Rotation) Sub(o Rotation) Rotation {
	return Rotation{
		X: mathutil.Delta(o.X, r.X),
		Y: mathutil.Delta(o.Y, r.Y),
		Z: mathutil.Delta(o.Z, r.Z),
	}
}

// Axes returns the three angles as an array indexed X, Y, Z.
func (r Rotation) Axes() [axesPerJoint]mathutil.Angle {
	return [axesPerJoint]mathutil.Angle{r.X, r.Y, r.Z}
}

// IsLargeRotation reports whether a delta turns by a quarter turn or more in
// either direction.
func IsLargeRotation(delta mathutil.Angle) bool {
	return delta.Abs() >= largeRotationUnits
}

// CountLargeAxes returns how many axes of delta are large rotations.
func CountLargeAxes(delta Rotation) int {
	n := 0
	for _, d := range delta.Axes() {
		if IsLargeRotation(d) {
			n++
		}
	}
	return n
}

// LerpAxis returns start advanced by a pre-scaled delta. The scaled value is
// truncated toward zero, matching the host's float-to-int conversion.
func LerpAxis(start mathutil.Angle, scaled float64) mathutil.Angle {
	return start + mathutil.Angle(scaled)
}

// LerpJoint linearly blends each axis of start toward target independently.
func LerpJoint(start, target Rotation, weight float64) Rotation {
	d := target.Sub(start)
	return Rotation{
		X: LerpAxis(start.X, float64(d.X)*weight),
		Y: LerpAxis(start.Y, float64(d.Y)*weight),
		Z: LerpAxis(start.Z, float64(d.Z)*weight),
	}
}
