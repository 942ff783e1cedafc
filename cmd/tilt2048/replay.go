package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/config"
	engine "github.com/vovakirdan/tilt2048/internal/games/t2048/core"
)

var (
	flagSpawn bool
	flagMoves string
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Apply a scripted move list to a board and print every step",
	Long: `Load a scenario file (starting board, score and moves), apply each tilt
and print the board after every step. No terminal UI is used.

Scenario format:
  name: corner merge
  board:            # top row first, 0 = empty
    - [0, 0, 0, 0]
    - [2, 0, 0, 0]
    - [2, 0, 0, 0]
    - [2, 0, 0, 0]
  score: 0
  win_tile: 2048    # optional, 0 disables the win check
  moves: "n e s w"  # n/e/s/w, up/right/down/left or full side names

Examples:
  tilt2048 replay corner.yaml
  tilt2048 replay corner.yaml --moves nnww
  tilt2048 replay corner.yaml --spawn --seed 7 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayCmd,
}

func init() {
	replayCmd.Flags().BoolVar(&flagSpawn, "spawn", false, "Spawn a random tile after every tilt that changes the board")
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Override the scenario's move list")
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc, err := config.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if flagMoves != "" {
		sc.Moves = flagMoves
	}

	opts := replayOptions{Spawn: gameCfg.Spawn}
	if flagSpawn {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	return replay(cmd.OutOrStdout(), logger, sc, gameCfg, opts)
}

// replayOptions controls random spawning during a replay. A nil Rand
// disables spawning.
type replayOptions struct {
	Rand  *rand.Rand
	Spawn config.T2048Spawn
}

// replay applies every move of sc and writes the board after each step.
func replay(w io.Writer, logger *log.Logger, sc config.Scenario, gameCfg config.T2048Config, opts replayOptions) error {
	maxPiece := gameCfg.Rules.WinTile
	if sc.WinTile != nil {
		maxPiece = *sc.WinTile
	}

	m, err := engine.NewModelFromValues(sc.Board, sc.Score, sc.MaxScore, engine.WithMaxPiece(maxPiece))
	if err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	if sc.Name != "" {
		fmt.Fprintf(w, "# %s\n", sc.Name)
	}
	fmt.Fprint(w, m)

	for i, token := range sc.MoveTokens() {
		side, err := engine.ParseSide(token)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if m.GameOver() {
			logger.Info("game over, remaining moves skipped", "move", i+1, "score", m.Score())
			break
		}

		changed := m.Tilt(side)
		logger.Debug("tilt", "move", i+1, "side", side, "changed", changed, "score", m.Score(), "moved", len(m.LastMoves()))

		if changed && opts.Rand != nil {
			spawnRandom(m, opts)
		}

		fmt.Fprintf(w, "\n> %s\n", side)
		fmt.Fprint(w, m)
	}

	logger.Info("replay finished", "score", m.Score(), "max_score", m.MaxScore(), "max_tile", m.MaxTile(), "over", m.GameOver())
	return nil
}

// spawnRandom adds a 2 or a 4 on a random empty cell.
func spawnRandom(m *engine.Model, opts replayOptions) {
	cells := m.EmptyCells()
	if len(cells) == 0 {
		return
	}
	cell := cells[opts.Rand.Intn(len(cells))]
	value := 2
	if opts.Rand.Float64() < opts.Spawn.Spawn4 {
		value = 4
	}
	// The cell was just reported empty, so AddTile cannot fail.
	_ = m.AddTile(engine.NewTile(value, cell.Col, cell.Row))
}
