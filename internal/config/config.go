// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for Pong.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for settings the simulation
// cannot run with.
var ErrInvalidConfig = errors.New("config: invalid pong config")

// PongConfig contains all configuration for a Pong match.
type PongConfig struct {
	Field   FieldConfig  `yaml:"field" toml:"field"`
	Paddles PaddleConfig `yaml:"paddles" toml:"paddles"`
	Ball    BallConfig   `yaml:"ball" toml:"ball"`
	AI      AIConfig     `yaml:"ai" toml:"ai"`
}

// FieldConfig defines the playing area in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry, shared by both sides.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Step   float64 `yaml:"step" toml:"step"` // Player movement per tick
}

// BallConfig defines the ball.
type BallConfig struct {
	Side  float64 `yaml:"side" toml:"side"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// AIConfig defines the computer opponent.
type AIConfig struct {
	Skill float64 `yaml:"skill" toml:"skill"` // Follow rate in (0, 1]
}

// Validate reports settings that would break the simulation. The
// simulation itself assumes a valid config, so callers validate first.
func (c PongConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"paddles.width", c.Paddles.Width},
		{"paddles.height", c.Paddles.Height},
		{"paddles.step", c.Paddles.Step},
		{"ball.side", c.Ball.Side},
		{"ball.speed", c.Ball.Speed},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.val))
		}
	}

	if c.AI.Skill <= 0 || c.AI.Skill > 1 {
		errs = append(errs, fmt.Errorf("ai.skill must be in (0, 1], got %g", c.AI.Skill))
	}
	if c.Paddles.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddles.height %g exceeds field.height %g", c.Paddles.Height, c.Field.Height))
	}
	if 2*c.Paddles.Width+c.Ball.Side > c.Field.Width {
		errs = append(errs, fmt.Errorf("field.width %g too narrow for paddles and ball", c.Field.Width))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
