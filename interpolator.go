package poseblend

import (
	"github.com/tphakala/go-pose-blend/internal/engine"
	"github.com/tphakala/go-pose-blend/internal/simdops"
)

// Interpolator blends skeleton poses. It owns the hybrid/linear mode switch
// and scratch buffers, so a single Interpolator must not be used from
// multiple goroutines at once.
type Interpolator struct {
	blender      *engine.Blender
	ops          *simdops.Ops
	simd         bool
	slerpEnabled bool

	// Scratch buffers reused across calls, sized to joints*axesPerJoint.
	deltas []float64
	scaled []float64
}

// newInterpolator assumes config has already been validated.
func newInterpolator(config *Config) *Interpolator {
	ops := simdops.Generic()
	if config.EnableSIMD {
		ops = simdops.Float64Ops()
	}

	return &Interpolator{
		blender:      engine.NewBlender(config.Trig, config.NearParallelCos, config.MinLargeAxes),
		ops:          ops,
		simd:         config.EnableSIMD,
		slerpEnabled: config.SlerpEnabled,
	}
}

// SetSlerpEnabled switches between the hybrid algorithm and pure per-axis
// blending. The new mode applies from the next Interpolate call.
func (ip *Interpolator) SetSlerpEnabled(enabled bool) {
	ip.slerpEnabled = enabled
}

// SlerpEnabled reports whether the hybrid algorithm is active.
func (ip *Interpolator) SlerpEnabled() bool {
	return ip.slerpEnabled
}

// Interpolate writes the blend of start toward target at weight into dst.
// The joint count is len(dst); start and target must be at least that long.
// dst may alias start or target.
//
// A weight of 1 or more copies target verbatim and a weight of 0 or less
// copies start verbatim. Otherwise joint 0 is blended linearly as a
// translation, and every other joint is slerped when the hybrid mode is on
// and enough of its axes turn by a quarter turn or more; the rest are
// blended per axis.
func (ip *Interpolator) Interpolate(dst, start, target Pose, weight float64) {
	if weight >= weightTarget {
		copy(dst, target)
		return
	}
	if weight <= weightStart {
		copy(dst, start)
		return
	}

	n := len(dst)
	start, target = start[:n], target[:n]

	// The mode is sampled once so every joint of this frame agrees.
	slerp := ip.slerpEnabled

	deltas, scaled := ip.scratch(n * axesPerJoint)
	for i := range n {
		d := target[i].Sub(start[i])
		j := i * axesPerJoint
		deltas[j] = float64(d.X)
		deltas[j+1] = float64(d.Y)
		deltas[j+2] = float64(d.Z)
	}
	ip.ops.Scale(scaled, deltas, weight)

	for i := range n {
		s, t := start[i], target[i]
		if ip.decide(i, slerp, t.Sub(s)) == PathSlerp {
			dst[i] = ip.blender.SlerpJoint(s, t, weight)
			continue
		}
		j := i * axesPerJoint
		dst[i] = Rotation{
			X: engine.LerpAxis(s.X, scaled[j]),
			Y: engine.LerpAxis(s.Y, scaled[j+1]),
			Z: engine.LerpAxis(s.Z, scaled[j+2]),
		}
	}
}

// Decide reports which path Interpolate takes for a single joint at a weight
// strictly between 0 and 1, under the current mode.
func (ip *Interpolator) Decide(joint int, start, target Rotation) BlendPath {
	return ip.decide(joint, ip.slerpEnabled, target.Sub(start))
}

// Plan appends to dst the path Interpolate would take for each joint and
// returns the extended slice. Pass dst[:0] to reuse its storage.
func (ip *Interpolator) Plan(dst []BlendPath, start, target Pose, weight float64) []BlendPath {
	n := min(len(start), len(target))
	if weight >= weightTarget || weight <= weightStart {
		for range n {
			dst = append(dst, PathCopy)
		}
		return dst
	}

	slerp := ip.slerpEnabled
	for i := range n {
		dst = append(dst, ip.decide(i, slerp, target[i].Sub(start[i])))
	}
	return dst
}

// Info returns the interpolator's effective configuration.
func (ip *Interpolator) Info() Info {
	algorithm := algorithmLinear
	if ip.slerpEnabled {
		algorithm = algorithmHybrid
	}

	return Info{
		Algorithm:       algorithm,
		NearParallelCos: ip.blender.NearParallelCos(),
		MinLargeAxes:    ip.blender.MinLargeAxes(),
		SIMDEnabled:     ip.simd,
	}
}

func (ip *Interpolator) decide(joint int, slerp bool, delta Rotation) BlendPath {
	if joint == rootJoint {
		return PathTranslation
	}
	if slerp && ip.blender.WantsSlerp(delta) {
		return PathSlerp
	}
	return PathLinear
}

// scratch returns the delta and scaled buffers resized to n, growing them
// only when needed.
func (ip *Interpolator) scratch(n int) (deltas, scaled []float64) {
	if cap(ip.deltas) < n {
		ip.deltas = make([]float64, n)
		ip.scaled = make([]float64, n)
	}
	return ip.deltas[:n], ip.scaled[:n]
}
