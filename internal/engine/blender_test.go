package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-pose-blend/internal/mathutil"
	"github.com/tphakala/go-pose-blend/internal/testutil"
)

// TestCountLargeAxes tests the quarter-turn threshold on each axis.
func TestCountLargeAxes(t *testing.T) {
	tests := []struct {
		name     string
		delta    Rotation
		expected int
	}{
		{"None", Rotation{}, 0},
		{"JustBelow", raw(0x3FFF, 0xC001, 0x3FFF), 0},
		{"TwoPositive", raw(0x4000, 0x4000, 0), 2},
		{"TwoNegative", raw(0xC000, 0, 0xC000), 2},
		{"HalfTurn", raw(0x8000, 0, 0), 1},
		{"All", raw(0x4000, 0x8000, 0xC000), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountLargeAxes(tt.delta))
		})
	}
}

// TestRotation_Sub tests per-axis wraparound deltas.
func TestRotation_Sub(t *testing.T) {
	start := raw(0x7F00, 0x0100, 0)
	target := raw(0x8100, 0xFF00, 0x9C40)
	d := target.Sub(start)
	assert.Equal(t, raw(0x0200, 0xFE00, 0x9C40), d)
}

// TestLerpJoint tests per-axis linear blending and truncation toward zero.
func TestLerpJoint(t *testing.T) {
	tests := []struct {
		name          string
		start, target Rotation
		weight        float64
		expected      Rotation
	}{
		{"Half", raw(100, 0, 0), raw(0xFF9C, 40000, 0), 0.5, Rotation{X: 0, Y: -12768, Z: 0}},
		{"TruncatePositive", Rotation{}, Rotation{X: 3}, 0.5, Rotation{X: 1}},
		{"TruncateNegative", Rotation{}, Rotation{X: -3}, 0.5, Rotation{X: -1}},
		{"AcrossSeam", raw(0x7F00, 0, 0), raw(0x8100, 0, 0), 0.5, raw(0x8000, 0, 0)},
		{"Quarter", Rotation{}, raw(0x4000, 0xC000, 0x2000), 0.25, raw(0x1000, 0xF000, 0x0800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LerpJoint(tt.start, tt.target, tt.weight))
		})
	}
}

// TestNewBlender_Defaults tests that zero values select defaults.
func TestNewBlender_Defaults(t *testing.T) {
	b := NewBlender(nil, 0, 0)
	require.NotNil(t, b)
	assert.Equal(t, mathutil.TableTrig{}, b.Trig())
	assert.InDelta(t, DefaultNearParallelCos, b.NearParallelCos(), 0)
	assert.Equal(t, DefaultMinLargeAxes, b.MinLargeAxes())
}

// TestBlender_WantsSlerp tests the large-axis threshold.
func TestBlender_WantsSlerp(t *testing.T) {
	b := NewBlender(nil, 0, 0)
	assert.True(t, b.WantsSlerp(raw(0x4000, 0x4000, 0)))
	assert.False(t, b.WantsSlerp(raw(0x4000, 0x3FFF, 0)))

	strict := NewBlender(nil, 0, 3)
	assert.False(t, strict.WantsSlerp(raw(0x4000, 0x4000, 0)))
	assert.True(t, strict.WantsSlerp(raw(0x4000, 0x4000, 0x8000)))
}

// TestBlender_SlerpJoint tests joint slerp endpoints and the midpoint of a
// combined pitch+yaw sweep.
func TestBlender_SlerpJoint(t *testing.T) {
	b := NewBlender(nil, 0, 0)
	start := raw(0, 0, 0)
	target := raw(0x4000, 0x2000, 0x4000)

	testutil.AssertAxesNear(t, start.Axes(), b.SlerpJoint(start, target, 0).Axes(), testutil.RoundTripTolerance)
	testutil.AssertAxesNear(t, target.Axes(), b.SlerpJoint(start, target, 1).Axes(), testutil.RoundTripTolerance)

	// The slerp midpoint must differ from the per-axis average for a
	// multi-axis sweep; that distortion is what slerp exists to fix.
	mid := b.SlerpJoint(start, target, 0.5)
	lin := LerpJoint(start, target, 0.5)
	assert.NotEqual(t, lin, mid)

	qs := EulerToQuat(trig, start)
	qt := EulerToQuat(trig, target)
	qm := EulerToQuat(trig, mid)
	a := arc(testutil.Normalize(qs), testutil.Normalize(qm))
	c := arc(testutil.Normalize(qm), testutil.Normalize(qt))
	assert.InDelta(t, a, c, 0.03)
}
