package poseblend

// NewLinear creates an interpolator that blends every joint per axis.
// This reproduces the engine's stock behavior.
func NewLinear() (*Interpolator, error) {
	return New(&Config{EnableSIMD: true})
}

// NewHybrid creates an interpolator with slerp enabled and default thresholds.
func NewHybrid() (*Interpolator, error) {
	return New(&Config{
		SlerpEnabled: true,
		EnableSIMD:   true,
	})
}

// InterpolateFrame is a convenience function for one-shot blending.
// It creates an interpolator, blends start toward target into a new pose of
// len(start) joints, and returns it.
func InterpolateFrame(start, target Pose, weight float64, slerp bool) (Pose, error) {
	ip, err := New(&Config{SlerpEnabled: slerp})
	if err != nil {
		return nil, err
	}

	out := make(Pose, len(start))
	ip.Interpolate(out, start, target, weight)
	return out, nil
}

// NewPose allocates a pose with the given number of joints, all zero.
func NewPose(joints int) Pose {
	return make(Pose, joints)
}

// Clone returns a copy of p that shares no storage with it.
func (p Pose) Clone() Pose {
	if p == nil {
		return nil
	}
	out := make(Pose, len(p))
	copy(out, p)
	return out
}
