package mathutil

import (
	"math"
)

// Trig is the set of fixed-angle trigonometric primitives the blending engine
// consumes from its host.
//
// Atan2S follows the host engine's argument order: Atan2S(x, y) returns the
// direction of the vector (x, y), which is atan2(y, x) in the usual
// mathematical convention. Use [Atan2] when the standard order is wanted.
type Trig interface {
	// SinS returns the sine of a, in [-1, 1].
	SinS(a Angle) float64

	// CosS returns the cosine of a, in [-1, 1].
	CosS(a Angle) float64

	// Atan2S returns the angle of the vector (x, y) measured counter-clockwise
	// from the positive x axis.
	Atan2S(x, y float64) Angle
}

// Atan2 returns the angle whose direction matches atan2(y, x) under the
// standard convention. It swaps the arguments before delegating to the host
// primitive, whose order is reversed.
func Atan2(t Trig, y, x float64) Angle {
	return t.Atan2S(x, y)
}

// TableTrig implements [Trig] with the quarter-wave sine table and
// first-octant arctangent table used by the host engine. The zero value is
// ready to use.
type TableTrig struct{}

// sinTable[i] = 0x7FFF * sin(i/4096 turn).
var sinTable [sinTableSize]int16

// atanTable[i] = atan(i/1024) in binary angle units, 0 to 0x2000.
var atanTable [atanTableSize]uint16

func init() {
	for i := range sinTableSize {
		rad := 2.0 * math.Pi * float64(i) / float64(sinTableSize*4)
		sinTable[i] = int16(math.Round(math.Sin(rad) * sinTableScale))
	}

	for i := range atanTableSize {
		rad := math.Atan(float64(i) / atanTableSteps)
		atanTable[i] = uint16(math.Round(rad * float64(angleHalfTurn) / math.Pi))
	}
}

// sins returns the table sine of a scaled to ±0x7FFF.
// The second quadrant mirrors the table from index 0x3FF, not 0x400, which
// reproduces the host's one-step offset exactly.
func sins(a Angle) int16 {
	x := uint16(a) >> sinIndexShift

	var v int16
	if x&sinMirrorBit != 0 {
		v = sinTable[sinIndexMask-(x&sinIndexMask)]
	} else {
		v = sinTable[x&sinIndexMask]
	}

	if x&sinNegateBit != 0 {
		return -v
	}
	return v
}

// SinS implements [Trig].
func (TableTrig) SinS(a Angle) float64 {
	return float64(sins(a)) / sinTableScale
}

// CosS implements [Trig].
func (TableTrig) CosS(a Angle) float64 {
	return float64(sins(a+QuarterTurn)) / sinTableScale
}

// atanLookup returns atan(num/den) for 0 <= num <= den from the octant table.
// Ratios that index outside the table, including NaN, fall back to entry 0.
func atanLookup(num, den float64) uint16 {
	if den == 0 {
		return atanTable[0]
	}

	idx := int((num/den)*atanTableSteps + atanRounding)
	if idx < 0 || idx >= atanTableSize {
		return atanTable[0]
	}
	return atanTable[idx]
}

// Atan2S implements [Trig] by reducing (x, y) to the first octant and
// reflecting the table result back into the right quadrant.
func (TableTrig) Atan2S(x, y float64) Angle {
	var ret int32

	switch {
	case y >= 0 && x >= 0:
		if y <= x {
			ret = int32(atanLookup(y, x))
		} else {
			ret = int32(angleQuarterTurn) - int32(atanLookup(x, y))
		}
	case y >= 0:
		if -x < y {
			ret = int32(angleQuarterTurn) + int32(atanLookup(-x, y))
		} else {
			ret = int32(angleHalfTurn) - int32(atanLookup(y, -x))
		}
	case x < 0:
		if -y <= -x {
			ret = int32(angleHalfTurn) + int32(atanLookup(-y, -x))
		} else {
			ret = int32(angleThreeQuarterTurn) - int32(atanLookup(-x, -y))
		}
	default:
		if x < -y {
			ret = int32(angleThreeQuarterTurn) + int32(atanLookup(x, -y))
		} else {
			ret = -int32(atanLookup(-y, x))
		}
	}

	return Angle(uint16(ret))
}

// Ensure TableTrig satisfies the interface
var _ Trig = TableTrig{}
