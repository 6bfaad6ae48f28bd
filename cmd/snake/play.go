package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/Enter/R     - Play again (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy    - 5 moves per second
  normal  - 8 moves per second
  hard    - 12 moves per second

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one interactive session and releases every resource it
// opened before returning.
func playGame() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	history := openHistory(cfg, logger)
	if history != nil {
		defer history.Close()
	}

	opts := settingsFromConfig(cfg)
	opts.HighScores = openHighScores(cfg, logger)
	opts.Logger = logger

	game := snake.New(opts)
	if err := tui.Run(game, history, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
