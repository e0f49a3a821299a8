package poseblend

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-pose-blend/internal/engine"
	"github.com/tphakala/go-pose-blend/internal/mathutil"
)

// Angle is a 16-bit binary angle: 0x4000 is a quarter turn and arithmetic
// wraps modulo a full turn.
type Angle = mathutil.Angle

// Rotation is one joint's X, Y, Z binary angles. For the root joint of a
// pose it holds a translation instead.
type Rotation = engine.Rotation

// Trig is the set of fixed-angle trig primitives consumed from the host.
// Atan2S takes its arguments in (x, y) order.
type Trig = mathutil.Trig

// TableTrig is the built-in lookup-table implementation of [Trig].
type TableTrig = mathutil.TableTrig

// Pose is one skeleton's joint rotations at a point in time. Index 0 is the
// root translation and is always blended linearly.
type Pose []Rotation

// Config holds interpolator configuration.
type Config struct {
	// SlerpEnabled turns on the hybrid algorithm. When false every joint is
	// blended per axis, reproducing the engine's default behavior.
	// It can be changed later with [Interpolator.SetSlerpEnabled].
	SlerpEnabled bool

	// NearParallelCos is the |cos(θ/2)| above which two orientations are
	// treated as nearly identical and blended component-wise instead of by
	// the sine formula. Must be in (0, 1). Zero selects 0.97.
	NearParallelCos float64

	// MinLargeAxes is how many axes must each turn by at least a quarter turn
	// before a joint is slerped. Must be 1-3. Zero selects 2.
	MinLargeAxes int

	// Trig supplies the fixed-angle trig primitives.
	// Nil selects the built-in lookup tables.
	Trig Trig

	// EnableSIMD allows the use of SIMD optimizations when available.
	// Set to false to force pure Go implementation.
	EnableSIMD bool
}

// BlendPath identifies how a joint is blended.
type BlendPath int

const (
	// PathCopy means the weight selected a verbatim copy of one pose.
	PathCopy BlendPath = iota

	// PathTranslation is the root joint, always blended linearly.
	PathTranslation

	// PathLinear blends each axis independently.
	PathLinear

	// PathSlerp blends through quaternion space.
	PathSlerp
)

// String returns the path name.
func (p BlendPath) String() string {
	switch p {
	case PathCopy:
		return "copy"
	case PathTranslation:
		return "translation"
	case PathLinear:
		return "linear"
	case PathSlerp:
		return "slerp"
	default:
		return fmt.Sprintf("BlendPath(%d)", int(p))
	}
}

// Common errors returned by the interpolator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid interpolator configuration")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.NearParallelCos < 0 || c.NearParallelCos >= 1 {
		return fmt.Errorf("%w: near-parallel cosine must be in (0, 1), got %v", ErrInvalidConfig, c.NearParallelCos)
	}

	if c.MinLargeAxes < 0 || c.MinLargeAxes > axesPerJoint {
		return fmt.Errorf("%w: min large axes must be 1-%d, got %d", ErrInvalidConfig, axesPerJoint, c.MinLargeAxes)
	}

	return nil
}

// New creates an interpolator with the specified configuration.
func New(config *Config) (*Interpolator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newInterpolator(config), nil
}

// Info describes an interpolator's configuration.
type Info struct {
	// Algorithm is "hybrid-slerp" when slerp is enabled, otherwise "linear".
	Algorithm string

	// NearParallelCos is the effective near-parallel threshold.
	NearParallelCos float64

	// MinLargeAxes is the effective large-axis threshold.
	MinLargeAxes int

	// SIMDEnabled indicates if SIMD delta scaling is active.
	SIMDEnabled bool
}
