// madminer is a terminal mining game: grapple ore, dig for gold, dodge
// the rising lava and spend the haul on upgrades between runs.
//
// Usage:
//
//	madminer play            - Start a run
//	madminer scores          - Show the run history
//	madminer serve           - Start SSH server for remote play
//	madminer reset           - Wipe the save profile
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set save database path (default: ~/.madminer/save.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "madminer",
	Short: "Mad Miner - dig for gold in your terminal",
	Long: `Mad Miner is a terminal mining game. Each run starts with the
grapple hook mini-game, then drops you into the mine: dig for gold,
watch your fuel, oxygen and heat, and stay above the rising lava.
Survive the random events, solve the line puzzles and spend your gold
on permanent upgrades.

Examples:
  madminer play
  madminer play --seed 42
  madminer scores
  madminer serve --ssh :2222
  madminer reset`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.madminer/save.db", "Path to save database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
