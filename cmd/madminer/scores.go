package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/madminer-game/madminer/internal/platform/tui"
	"github.com/madminer-game/madminer/internal/save"
)

var flagScoresTable bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recorded runs, best first.

By default the interactive scoreboard opens; --plain prints a simple
table to stdout instead.

Examples:
  madminer scores
  madminer scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := save.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTable {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *save.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Mad Miner - Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'madminer play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Gold", "Depth", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "----", "-----", "----")
	for i, entry := range runs {
		fmt.Printf("  %-4d  %-10d  %-8d  %-7dm  %s\n",
			i+1, entry.Score, entry.Gold, int(entry.Depth/10),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", store.Load().HighScore)
}
