package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the score history interactively",
	Long: `Open a scrollable table of past games.

Controls:
  Up/Down/j/k  - Scroll
  Tab          - Switch between best and recent games
  Esc/Q        - Close`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	history := openHistory(cfg, discardLogger())
	rt := runtimeConfig()

	_, runErr := tui.RunScoreboard(history, snake.ID, "Snake", rt.ScreenW, rt.ScreenH)

	if history != nil {
		history.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
