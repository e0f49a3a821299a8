package engine

// Quaternion normalization constants
const (
	// minNormSquared bounds |q|² from below before normalizing. A corrupted
	// accumulator can produce an all-zero quaternion; clamping avoids the
	// divide-by-zero but does not recover a meaningful rotation.
	minNormSquared = 0.001

	// eulerScale is the factor of 2 shared by every term of the
	// quaternion-to-Euler formulas, folded into the normalization.
	eulerScale = 2.0

	// singularityLimit is |sin(pitch)| at which pitch is pinned to a pole.
	singularityLimit = 1.0
)

// Blend heuristic defaults
const (
	// DefaultNearParallelCos is the |cos(θ/2)| above which slerp degrades to
	// a component-wise blend. Tunable; the value is empirical.
	DefaultNearParallelCos = 0.97

	// DefaultMinLargeAxes is how many axes must turn by a quarter turn or more
	// before a joint is slerped.
	DefaultMinLargeAxes = 2

	// largeRotationUnits is the delta magnitude that makes an axis "large".
	largeRotationUnits = 0x4000

	// axesPerJoint is the number of angles in a rotation triple.
	axesPerJoint = 3
)

// halfAngleDivisor halves a binary angle before the half-angle trig lookup.
const halfAngleDivisor = 2
