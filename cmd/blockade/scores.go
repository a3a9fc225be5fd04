package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smolin/blockade/internal/registry"
	"github.com/smolin/blockade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for the given mode (campaign by default).

Examples:
  blockade scores
  blockade scores endless`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	modeID, ok := modeIDFromArgs(args)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want \"campaign\" or \"endless\")\n", args[0])
		os.Exit(1)
	}

	g, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blockade play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.Duration/60, entry.Duration%60)
		fmt.Printf("  %-4d  %-10d  %-6d  %-6s  %s\n", i+1, entry.Score, entry.Level, timeStr, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
