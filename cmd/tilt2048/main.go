// tilt2048 is a terminal 2048 game built on a perspective-remapped tilt
// engine.
//
// Usage:
//
//	tilt2048 list                 - List available variants
//	tilt2048 play [variant]       - Play a variant (default: 2048)
//	tilt2048 menu                 - Pick a variant interactively
//	tilt2048 replay <scenario>    - Apply a scripted move list and print each board
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tilt2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilt2048",
	Short: "tilt2048 - the 2048 sliding puzzle in your terminal",
	Long: `tilt2048 is a terminal 2048 game. Every tilt slides all tiles toward
one edge and merges equal neighbours at most once per tile.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  replay   - Run a scripted scenario without a UI

Examples:
  tilt2048 list
  tilt2048 play
  tilt2048 play 2048_endless --difficulty hard
  tilt2048 replay scenarios/corner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilt2048",
		Level:           level,
	}), nil
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyT2048Preset(&cfg, preset)
	return cfg, cfg.Validate()
}
