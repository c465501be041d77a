package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madminer-game/madminer/internal/save"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the save profile",
	Long: `Delete the high score, upgrade levels and run history.

Asks for confirmation unless --yes is given.

Examples:
  madminer reset
  madminer reset --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	if !flagResetYes {
		fmt.Print("This wipes the high score, upgrades and run history. Continue? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := save.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Save profile reset.")
}
