package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start tilt2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  tilt2048 menu
  tilt2048 menu --difficulty hard`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	for {
		cfg := runtimeConfig()

		gameID, err := tui.RunMenu(cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if gameID == "" {
			return
		}

		if err := startGame(gameID, gameCfg, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
