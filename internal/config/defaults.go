package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 30,
		},
		Gameplay: GameplayConfig{
			MovesPerSecond:  8,
			ScorePerFood:    10,
			GrowthPerFood:   1,
			InitialLength:   3,
			MaxFoodAttempts: 100,
		},
		Storage: StorageConfig{
			HighScoreFile: "~/.snake/high_score.txt",
			ScoresDB:      "~/.snake/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
