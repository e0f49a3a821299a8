package poseblend

// Pose layout constants
const (
	rootJoint    = 0 // Joint index holding the root translation
	axesPerJoint = 3 // Angles per rotation triple
)

// Weight fast-path bounds. Comparisons are exact, not epsilon-based.
const (
	weightStart  = 0.0 // At or below: copy the start pose
	weightTarget = 1.0 // At or above: copy the target pose
)

// Algorithm names reported by Info
const (
	algorithmHybrid = "hybrid-slerp"
	algorithmLinear = "linear"
)
