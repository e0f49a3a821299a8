package main

// Pose layout
const (
	axesPerJoint = 3
)

// Accepted raw angle range in blend files: signed or unsigned 16-bit.
const (
	minRawAngle = -32768
	maxRawAngle = 65535
)

// Default command-line flag values
const (
	defaultWeight = -1.0 // Negative: use the weight from the blend file
	defaultSteps  = 0    // Zero: blend once at a single weight
)

// Demo skeleton parameters
const (
	demoWeight = 0.5
	demoSteps  = 4
)
