package mathutil

// Binary angle units. A full turn is 1<<16 and arithmetic wraps.
const (
	angleQuarterTurn      uint16 = 0x4000 // 90°
	angleHalfTurn         uint16 = 0x8000 // 180°
	angleThreeQuarterTurn uint16 = 0xC000 // 270°
	angleFullTurn                = 1 << 16

	degreesPerTurn = 360.0
)

// Sine table layout
// The table covers one quadrant at 1/4096 turn resolution; the low 4 bits of
// the angle are discarded before lookup.
const (
	sinTableSize  = 0x400 // Entries per quadrant
	sinIndexShift = 4     // Angle bits dropped before lookup
	sinIndexMask  = 0x3FF // Index within a quadrant
	sinMirrorBit  = 0x400 // Set in the second and fourth quadrants
	sinNegateBit  = 0x800 // Set in the third and fourth quadrants
	sinTableScale = 0x7FFF
)

// Arctangent table layout
// Entry i holds atan(i/1024) for ratios in [0, 1], i.e. the first octant.
const (
	atanTableSteps = 1024
	atanTableSize  = atanTableSteps + 1
	atanRounding   = 0.5 // Added before truncating the table index
)
