package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs.

Examples:
  breakout scores
  breakout scores --limit 25
  breakout scores --tui
  breakout scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("All Breakout scores deleted.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, "Breakout", width, height)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Breakout")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'breakout play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %10s  %-20s  %s\n", "Rank", "Score", "Level", "When")
	fmt.Printf("  %-4s  %10s  %-20s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		level := entry.Level
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %10s  %-20s  %s\n", i+1, tui.FormatScore(entry.Score), level, tui.FormatWhen(entry.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %s   Runs: %s   Average: %.0f\n",
			tui.FormatScore(stats.HighScore), tui.FormatScore(stats.GamesCount), stats.AvgScore)
	}
	return nil
}
