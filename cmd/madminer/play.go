package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/madminer-game/madminer/internal/config"
	"github.com/madminer-game/madminer/internal/core"
	"github.com/madminer-game/madminer/internal/platform/tui"
	"github.com/madminer-game/madminer/internal/save"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Mad Miner run.

Controls:
  Space/Enter  - Fire the hook (hook stage)
  WASD/Arrows  - Move and dig, Space stops
  Mouse drag   - Draw the puzzle line, Enter finishes
  1/2/3        - Buy upgrades in the shop, B closes it
  P/Esc        - Pause
  R            - New run (after game over)
  Q/Ctrl+C     - Quit

Examples:
  madminer play
  madminer play --seed 42
  madminer play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	tun, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := core.RuntimeConfig{
		Width:    tun.Viewport.Width,
		Height:   tun.Viewport.Height,
		Tile:     tun.Viewport.Tile,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := save.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		// Continue without persistence - the run still works
		store = nil
	}

	data := save.Defaults()
	if store != nil {
		data = store.Load()
	}

	runErr := tui.Run(tun, store, data, rt)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
