package engine

import (
	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// Blender bundles the trig backend and heuristic thresholds used to blend a
// single joint. It holds no per-call state and is safe for concurrent use.
type Blender struct {
	trig            mathutil.Trig
	nearParallelCos float64
	minLargeAxes    int
}

// NewBlender creates a Blender. A nil trig selects [mathutil.TableTrig];
// zero thresholds select the defaults.
func NewBlender(trig mathutil.Trig, nearParallelCos float64, minLargeAxes int) *Blender {
	if trig == nil {
		trig = mathutil.TableTrig{}
	}
	if nearParallelCos == 0 {
		nearParallelCos = DefaultNearParallelCos
	}
	if minLargeAxes == 0 {
		minLargeAxes = DefaultMinLargeAxes
	}
	return &Blender{
		trig:            trig,
		nearParallelCos: nearParallelCos,
		minLargeAxes:    minLargeAxes,
	}
}

// Trig returns the trig backend.
func (b *Blender) Trig() mathutil.Trig {
	return b.trig
}

// NearParallelCos returns the near-parallel cosine threshold.
func (b *Blender) NearParallelCos() float64 {
	return b.nearParallelCos
}

// MinLargeAxes returns the number of large axes that triggers slerp.
func (b *Blender) MinLargeAxes() int {
	return b.minLargeAxes
}

// WantsSlerp reports whether a joint delta has enough large-rotation axes to
// justify slerp. It does not consider the root joint or the mode switch.
func (b *Blender) WantsSlerp(delta Rotation) bool {
	return CountLargeAxes(delta) >= b.minLargeAxes
}

// SlerpJoint blends start toward target through quaternion space.
func (b *Blender) SlerpJoint(start, target Rotation, weight float64) Rotation {
	qs := EulerToQuat(b.trig, start)
	qt := EulerToQuat(b.trig, target)
	qo := Slerp(b.trig, qs, qt, weight, b.nearParallelCos)
	return QuatToEuler(b.trig, qo)
}
