package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// The values match the embedded defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  700,
			Height: 600,
		},
		Paddles: PaddleConfig{
			Width:  20,
			Height: 100,
			Step:   7,
		},
		Ball: BallConfig{
			Side:  20,
			Speed: 7,
		},
		AI: AIConfig{
			Skill: 0.1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongYAML
}
