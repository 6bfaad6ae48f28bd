package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best games from the score history, or the latest ones
with --recent. The single best score kept in the high score file is shown
as well.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --recent
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := printScores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores() error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	path := cfg.Storage.ScoresDB
	if flagDBPath != "" {
		path = flagDBPath
	}
	if path == "" {
		return fmt.Errorf("score history is disabled (storage.scores_db is empty)")
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(snake.ID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	var records []storage.GameRecord
	if flagScoresRecent {
		fmt.Println("Recent Games - Snake")
		records, err = store.RecentGames(snake.ID, flagScoresLimit)
	} else {
		fmt.Println("High Scores - Snake")
		records, err = store.TopScores(snake.ID, flagScoresLimit)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "-----", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %-8s  %-6d  %-6d  %s\n",
			i+1, snake.FormatScore(r.Score), r.Length, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(snake.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %s  Average: %.1f  Longest snake: %d\n",
			stats.GamesCount, snake.FormatScore(stats.HighScore), stats.AvgScore, stats.BestLength)
	}

	if hs, err := openHighScores(cfg, discardLogger()).Load(); err == nil {
		fmt.Printf("High score file: %s\n", snake.FormatScore(hs))
	}
	return nil
}
