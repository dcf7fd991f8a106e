package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lemon-snake/internal/config"
	"github.com/vovakirdan/lemon-snake/internal/registry"
	"github.com/vovakirdan/lemon-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the score history of a variant",
	Long: `Display the top 10 rounds for the specified variant, plus the
all-time best from the high score file.

Examples:
  snake scores classic
  snake scores growth --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(settings.Scores.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared score history for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Ticks", "Date")
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Length, entry.Ticks, dateStr)
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Rounds: %d  Average: %.1f  Longest snake: %d\n",
				stats.GamesCount, stats.AvgScore, stats.MaxLength)
		}
	}

	// The high score file is shared by all variants.
	fmt.Println()
	hs := storage.NewHighScoreFile(config.ExpandHome(settings.HighScore.Path), logger)
	if best := hs.Read(); best >= 0 {
		fmt.Printf("High score file: %d\n", best)
	} else {
		fmt.Println("High score file: ---")
	}
}
