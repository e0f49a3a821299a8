package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	poseblend "github.com/tphakala/go-pose-blend"
)

// errInvalidPose indicates a malformed pose in a blend file.
var errInvalidPose = errors.New("invalid pose")

// blendFile is a YAML description of one blend: two keyframe poses and the
// interpolator settings. Angles are raw 16-bit values, either signed
// (-32768..32767) or unsigned (0..65535).
type blendFile struct {
	Weight          float64 `yaml:"weight"`
	Slerp           bool    `yaml:"slerp"`
	NearParallelCos float64 `yaml:"near_parallel_cos"`
	MinLargeAxes    int     `yaml:"min_large_axes"`
	Start           [][]int `yaml:"start"`
	Target          [][]int `yaml:"target"`
}

// loadBlendFile reads and decodes a blend file.
func loadBlendFile(path string) (*blendFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f blendFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// config returns the interpolator configuration described by the file.
func (f *blendFile) config() *poseblend.Config {
	return &poseblend.Config{
		SlerpEnabled:    f.Slerp,
		NearParallelCos: f.NearParallelCos,
		MinLargeAxes:    f.MinLargeAxes,
		EnableSIMD:      true,
	}
}

// poses decodes the start and target poses, which must have the same number
// of joints.
func (f *blendFile) poses() (start, target poseblend.Pose, err error) {
	if start, err = parsePose("start", f.Start); err != nil {
		return nil, nil, err
	}
	if target, err = parsePose("target", f.Target); err != nil {
		return nil, nil, err
	}
	if len(start) != len(target) {
		return nil, nil, fmt.Errorf("%w: start has %d joints, target has %d", errInvalidPose, len(start), len(target))
	}
	return start, target, nil
}

func parsePose(name string, rows [][]int) (poseblend.Pose, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no joints", errInvalidPose, name)
	}

	pose := poseblend.NewPose(len(rows))
	for i, row := range rows {
		if len(row) != axesPerJoint {
			return nil, fmt.Errorf("%w: %s joint %d has %d values, want %d", errInvalidPose, name, i, len(row), axesPerJoint)
		}
		var axes [axesPerJoint]poseblend.Angle
		for a, v := range row {
			if v < minRawAngle || v > maxRawAngle {
				return nil, fmt.Errorf("%w: %s joint %d value %d out of range", errInvalidPose, name, i, v)
			}
			axes[a] = poseblend.Angle(uint16(v))
		}
		pose[i] = poseblend.Rotation{X: axes[0], Y: axes[1], Z: axes[2]}
	}
	return pose, nil
}
