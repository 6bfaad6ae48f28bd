// snake is a single-player grid snake game for the terminal.
//
// Usage:
//
//	snake                  - Play (same as "snake play")
//	snake play             - Play a game
//	snake menu             - Launcher with difficulty picker and score history
//	snake scores           - Print the score history
//	snake board            - Browse the score history interactively
//	snake config           - Print the effective configuration as YAML
//	snake list             - List registered games
//
// Global flags:
//
//	--fps <rate>           - Set frame rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load configuration from a YAML file
//	--difficulty <preset>  - easy, normal or hard
//	--db <path>            - Score history database (overrides the config)
//	--no-history           - Do not record finished games
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagNoHistory  bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow, don't crash",
	Long: `Snake is a terminal snake game. Steer the snake around a walled grid,
eat food to grow and score, and avoid the walls and your own tail.

Available commands:
  play     - Play a game (default)
  menu     - Launcher with difficulty picker
  scores   - Print the score history
  board    - Browse the score history interactively
  config   - Print the effective configuration
  list     - Show registered games

Examples:
  snake
  snake play --difficulty hard
  snake play --seed 42 --config ./configs/snake.yaml
  snake scores --limit 5`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagDBPath, "db", "", "Path to score history database (default from config)")
	pf.BoolVar(&flagNoHistory, "no-history", false, "Do not record finished games")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
