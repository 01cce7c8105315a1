package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name is not one of
// the presets.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Difficulty holds the values a preset sets on the match.
type Difficulty struct {
	Preset      DifficultyPreset
	BallSpeed   float64
	AISkill     float64
	Description string
}

var difficulties = []Difficulty{
	{Preset: DifficultyEasy, BallSpeed: 5, AISkill: 0.05, Description: "Slow ball, lazy opponent"},
	{Preset: DifficultyMedium, BallSpeed: 8, AISkill: 0.115, Description: "Faster ball, attentive opponent"},
	{Preset: DifficultyHard, BallSpeed: 12, AISkill: 0.2, Description: "Fast ball, sharp opponent"},
}

// Difficulties returns all presets from easiest to hardest.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// Lookup returns the settings for a preset.
func Lookup(preset DifficultyPreset) (Difficulty, error) {
	for _, d := range difficulties {
		if d.Preset == preset {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(preset))
}

// ParseDifficulty converts user input such as "Hard" into a preset.
// Matching ignores case and surrounding whitespace.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	preset := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(preset); err != nil {
		return "", err
	}
	return preset, nil
}

// ApplyPongPreset sets the ball speed and AI skill for a preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) error {
	d, err := Lookup(preset)
	if err != nil {
		return err
	}
	cfg.Ball.Speed = d.BallSpeed
	cfg.AI.Skill = d.AISkill
	return nil
}
