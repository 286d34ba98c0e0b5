package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuisteroids/tuisteroids/internal/platform/tui"
	"github.com/tuisteroids/tuisteroids/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores, or browse them interactively.

Examples:
  tuisteroids scores
  tuisteroids scores --interactive
  tuisteroids scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tuisteroids play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Wave", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Wave, dateStr)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d   Best wave: %d   Average: %.0f\n",
			stats.RunsCount, stats.HighScore, stats.BestWave, stats.AvgScore)
	}
	return nil
}
