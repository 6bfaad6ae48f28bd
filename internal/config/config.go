// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GridConfig defines the play field size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines movement speed and rewards.
type GameplayConfig struct {
	MovesPerSecond  int `yaml:"moves_per_second"`
	ScorePerFood    int `yaml:"score_per_food"`
	GrowthPerFood   int `yaml:"growth_per_food"`
	InitialLength   int `yaml:"initial_length"`
	MaxFoodAttempts int `yaml:"max_food_attempts"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file"`
	ScoresDB      string `yaml:"scores_db"`
}

// Validate reports every problem with the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Gameplay.MovesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("moves_per_second must be positive, got %d", c.Gameplay.MovesPerSecond))
	}
	if c.Gameplay.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial_length must be at least 1, got %d", c.Gameplay.InitialLength))
	}
	// The snake starts with its head on the center column and extends left.
	if c.Grid.Width > 0 && c.Gameplay.InitialLength > c.Grid.Width/2+1 {
		errs = append(errs, fmt.Errorf("initial_length %d does not fit in a grid %d wide", c.Gameplay.InitialLength, c.Grid.Width))
	}
	if c.Gameplay.ScorePerFood < 0 {
		errs = append(errs, fmt.Errorf("score_per_food must not be negative, got %d", c.Gameplay.ScorePerFood))
	}
	if c.Gameplay.GrowthPerFood < 0 {
		errs = append(errs, fmt.Errorf("growth_per_food must not be negative, got %d", c.Gameplay.GrowthPerFood))
	}
	if c.Gameplay.MaxFoodAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max_food_attempts must be positive, got %d", c.Gameplay.MaxFoodAttempts))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MovesPerSecondForPreset returns the snake speed for a difficulty preset.
// Unknown presets return 0.
func MovesPerSecondForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 8
	case DifficultyHard:
		return 12
	default:
		return 0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	speed := MovesPerSecondForPreset(preset)
	if speed == 0 {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Gameplay.MovesPerSecond = speed
	return nil
}
