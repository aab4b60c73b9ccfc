package prefabs

import (
	"errors"
	"fmt"

	"github.com/automoto/dave/shared/playerstate"
	"gopkg.in/yaml.v3"
)

// PlayerFile is the prefab holding the player tuning.
const PlayerFile = "player.yaml"

type PlayerSpec struct {
	Name         string        `yaml:"name"`
	Gravity      float64       `yaml:"gravity"`
	RunSpeed     float64       `yaml:"run_speed"`
	JumpImpulse  float64       `yaml:"jump_impulse"`
	MaxFallSpeed float64       `yaml:"max_fall_speed"`
	GroundProbe  float64       `yaml:"ground_probe"`
	Spawn        PointSpec     `yaml:"spawn"`
	Collider     ColliderSpec  `yaml:"collider"`
	Animation    AnimationSpec `yaml:"animation"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AnimationSpec struct {
	FrameW  int                `yaml:"frame_w"`
	FrameH  int                `yaml:"frame_h"`
	Playing bool               `yaml:"playing"`
	Defs    []AnimationDefSpec `yaml:"defs"`
}

// AnimationDefSpec is one animation. Defs are listed in state order:
// walk, idle, jump.
type AnimationDefSpec struct {
	Name       string `yaml:"name"`
	Row        int    `yaml:"row"`
	FrameCount int    `yaml:"frame_count"`
	FPS        int    `yaml:"fps"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

// ParsePlayerSpec decodes and validates a player spec from raw YAML.
func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate() error {
	var errs []error
	if s.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity must not be negative, got %v", s.Gravity))
	}
	if s.RunSpeed < 0 {
		errs = append(errs, fmt.Errorf("run_speed must not be negative, got %v", s.RunSpeed))
	}
	if s.JumpImpulse < 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must not be negative, got %v", s.JumpImpulse))
	}
	if s.MaxFallSpeed < 0 {
		errs = append(errs, fmt.Errorf("max_fall_speed must not be negative, got %v", s.MaxFallSpeed))
	}
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		errs = append(errs, fmt.Errorf("collider must have a positive size, got %dx%d", s.Collider.Width, s.Collider.Height))
	}
	if s.Animation.FrameW <= 0 || s.Animation.FrameH <= 0 {
		errs = append(errs, fmt.Errorf("animation frame must have a positive size, got %dx%d", s.Animation.FrameW, s.Animation.FrameH))
	}
	for i, def := range s.Animation.Defs {
		if _, ok := playerstate.ByName(def.Name); !ok {
			errs = append(errs, fmt.Errorf("animation %d: unknown name %q", i, def.Name))
		}
		if def.FrameCount <= 0 {
			errs = append(errs, fmt.Errorf("animation %d (%s): frame_count must be positive", i, def.Name))
		}
		if def.FPS <= 0 {
			errs = append(errs, fmt.Errorf("animation %d (%s): fps must be positive", i, def.Name))
		}
	}
	return errors.Join(errs...)
}
