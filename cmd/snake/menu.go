package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher menu",
	Long: `Start snake in interactive menu mode.

Pick a difficulty with Left/Right, then Play. After a session ends you
return to the menu. High Scores opens the score history.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Q/Esc           - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menuLoop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menuLoop() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	history := openHistory(base, logger)
	if history != nil {
		defer history.Close()
	}
	highScores := openHighScores(base, logger)

	rt := runtimeConfig()
	difficulty := config.DifficultyPreset(flagDifficulty)

	for {
		best, err := highScores.Load()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}

		result, err := tui.RunMenu("Snake", best, difficulty, rt)
		if err != nil {
			return err
		}
		rt = result.Config

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(history, snake.ID, "Snake", rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			difficulty = result.Difficulty
			cfg := base
			if err := config.ApplySnakePreset(&cfg, difficulty); err != nil {
				return err
			}
			opts := settingsFromConfig(cfg)
			opts.HighScores = highScores
			opts.Logger = logger

			logger.Info("starting game from menu", "difficulty", difficulty, "moves_per_second", opts.MovesPerSecond)
			if err := tui.Run(snake.New(opts), history, rt, logger); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

		default:
			return nil
		}
	}
}
