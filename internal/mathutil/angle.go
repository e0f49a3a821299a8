// Package mathutil provides binary-angle arithmetic and lookup-table
// trigonometry matching the fixed-point conventions of the host animation
// engine.
package mathutil

import "math"

// Angle is a 16-bit binary angle. 0x0000 is 0°, 0x4000 is 90°, 0x8000 is 180°
// and 0xC000 is 270°. Addition and subtraction wrap modulo a full turn, so the
// difference of two angles is always the shortest signed turn between them.
type Angle int16

// Common angles. These are variables because 0x8000 and 0xC000 do not fit in
// a signed constant of type Angle.
var (
	QuarterTurn      = FromRaw(angleQuarterTurn)
	HalfTurn         = FromRaw(angleHalfTurn)
	ThreeQuarterTurn = FromRaw(angleThreeQuarterTurn)
)

// FromRaw reinterprets an unsigned 16-bit angle as an Angle.
func FromRaw(raw uint16) Angle {
	return Angle(raw)
}

// Raw returns the unsigned 16-bit representation of a.
func (a Angle) Raw() uint16 {
	return uint16(a)
}

// Delta returns the signed wraparound turn from a to b.
func Delta(a, b Angle) Angle {
	return b - a
}

// Abs returns the magnitude of a as an unsigned value in [0, 0x8000].
// HalfTurn has no positive int16 counterpart, so the result is unsigned.
func (a Angle) Abs() uint16 {
	if a < 0 {
		return uint16(-int32(a))
	}
	return uint16(a)
}

// Degrees converts a to degrees in [-180, 180).
func (a Angle) Degrees() float64 {
	return float64(a) * degreesPerTurn / angleFullTurn
}

// FromDegrees converts degrees to the nearest binary angle, wrapping values
// outside a single turn.
func FromDegrees(deg float64) Angle {
	units := int64(math.Round(deg * angleFullTurn / degreesPerTurn))
	return Angle(uint16(units))
}
