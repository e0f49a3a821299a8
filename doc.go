// Package poseblend provides hybrid linear/slerp keyframe blending for
// skeletal animation over 16-bit binary angles.
//
// Joint rotations are stored as three signed 16-bit angles where 0x4000 is a
// quarter turn. Blending each axis independently is fast and exact at the
// keyframes, but large rotations on more than one axis take a distorted path
// in between. This package detects those joints and blends them through
// quaternion space instead, leaving everything else on the cheap path.
//
// # Features
//
//   - Per-axis linear blending with wraparound-correct shortest deltas
//   - Spherical linear interpolation (slerp) for multi-axis large rotations
//   - Runtime switch between hybrid and pure linear blending
//   - Exact fast paths for weights at or beyond the keyframes
//   - Pluggable fixed-angle trig via [Trig], with built-in lookup tables
//   - Optional SIMD acceleration for batch delta scaling via github.com/tphakala/simd
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For one-shot blending:
//
//	out, err := poseblend.InterpolateFrame(start, target, 0.5, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For per-frame blending with a reusable interpolator:
//
//	ip, err := poseblend.New(&poseblend.Config{
//	    SlerpEnabled: true,
//	    EnableSIMD:   true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := poseblend.NewPose(len(start))
//	for frame := range frames {
//	    ip.Interpolate(out, start, target, frame.Weight)
//	    draw(out)
//	}
//
// # Blend Paths
//
// For a weight strictly between 0 and 1, each joint takes one of three paths:
//
//   - [PathTranslation]: joint 0 holds the root translation and is always
//     blended linearly. It is never converted to a quaternion.
//   - [PathSlerp]: when slerp is enabled and at least MinLargeAxes axes each
//     turn by a quarter turn or more, the joint is converted to quaternions,
//     slerped, and converted back.
//   - [PathLinear]: every other joint is blended per axis.
//
// [Interpolator.Plan] and [Interpolator.Decide] report the path without
// blending, which is useful for diagnostics.
//
// # Angle Conventions
//
// Rotations are applied in X, Y, Z order. The host trig primitive Atan2S takes
// its arguments in (x, y) order; an internal adapter converts it to the usual
// atan2(y, x) convention and every internal call goes through that adapter.
// Pitch values at exactly ±90° are resolved by the gimbal-lock branch, which
// pins the remaining rotation onto the X axis.
//
// # Thread Safety
//
// An [Interpolator] keeps reusable scratch buffers and the mode switch, and
// is not safe for concurrent use. Toggle the mode with
// [Interpolator.SetSlerpEnabled] between Interpolate calls, never during one.
// Use one interpolator per goroutine for parallel blending.
//
// # Attribution
//
// The hybrid blending heuristic follows the animation interpolation patch by
// Sauraen for the Zelda 64 decompilation. The Euler and quaternion
// conversions use the standard formulas from Martin Baker's
// euclideanspace.com, adapted for binary angles.
package poseblend
