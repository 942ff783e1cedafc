package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
	"github.com/vovakirdan/tilt2048/internal/platform/tui"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

var (
	flagLevel   int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: 2048).

Controls:
  Arrows/WASD/HJKL - Tilt the board
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, one extra starting tile
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, more 4s at max
  fixed  - No progression, stays at config's initial level

Examples:
  tilt2048 play
  tilt2048 play 2048_campaign --level 3
  tilt2048 play 2048_big --difficulty easy
  tilt2048 play --config ./my-2048.yaml --log-file play.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based, 0 = first)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "2048"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilt2048 list' to see available variants.")
		os.Exit(1)
	}

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

	runErr := startGame(gameID, gameCfg, runtimeConfig(), logger)
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playLogger opens the --log-file logger. The alternate screen owns the
// terminal, so without a file the TUI logs nothing.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	var closed bool
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}

// startGame builds the variant and runs it until the player quits.
func startGame(gameID string, gameCfg config.T2048Config, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		return err
	}

	if s, ok := game.(interface{ SetStartLevel(int) }); ok && flagLevel > 0 {
		s.SetStartLevel(flagLevel)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return err
	}
	if g, ok := game.(*t2048.Game); ok && logger != nil {
		logSession(logger, g.Snapshot())
	}
	return nil
}

// logSession records how a finished session ended.
func logSession(logger *log.Logger, snap t2048.Snapshot) {
	kv := []any{"mode", snap.Mode, "state", snap.State, "score", snap.Score,
		"max_score", snap.MaxScore, "moves", snap.Moves, "max_tile", snap.MaxTile}
	if snap.Level > 0 {
		kv = append(kv, "level", snap.Level, "target", snap.Target)
	}
	logger.Info("session ended", kv...)
}
