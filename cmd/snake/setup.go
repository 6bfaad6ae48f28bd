package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// newLogger returns a logger writing to --log-file, or a discarding one.
// The TUI owns the terminal, so logs never go to stdout or stderr while
// playing. The returned closer must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if flagLogFile != "" {
		path, err := highscore.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the configuration and applies --difficulty.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// settingsFromConfig converts the YAML configuration into game options.
func settingsFromConfig(cfg config.SnakeConfig) snake.Options {
	return snake.Options{
		Settings: snake.Settings{
			Grid:            snake.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
			InitialLength:   cfg.Gameplay.InitialLength,
			ScorePerFood:    cfg.Gameplay.ScorePerFood,
			GrowthPerFood:   cfg.Gameplay.GrowthPerFood,
			MaxFoodAttempts: cfg.Gameplay.MaxFoodAttempts,
		},
		MovesPerSecond: cfg.Gameplay.MovesPerSecond,
	}
}

// openHighScores returns the plain-text high score store. When the path is
// unusable the game still runs with an in-memory store.
func openHighScores(cfg config.SnakeConfig, logger *log.Logger) highscore.Store {
	store, err := highscore.NewFileStore(cfg.Storage.HighScoreFile)
	if err != nil {
		logger.Warn("high score will not be persisted", "error", err)
		return highscore.NewMemoryStore(0)
	}
	logger.Debug("high score file", "path", store.Path())
	return store
}

// openHistory opens the score history database, or returns nil when history
// is disabled or unavailable.
func openHistory(cfg config.SnakeConfig, logger *log.Logger) *storage.Store {
	if flagNoHistory {
		return nil
	}
	path := cfg.Storage.ScoresDB
	if flagDBPath != "" {
		path = flagDBPath
	}
	if path == "" {
		return nil
	}

	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open score history", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig returns the frame rate, seed and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// discardLogger is used by commands that do not run the TUI.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
