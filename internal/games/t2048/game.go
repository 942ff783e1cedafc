package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/core"
	engine "github.com/vovakirdan/tilt2048/internal/games/t2048/core"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// bigBoardSize is the board used by the "2048_big" variant.
const bigBoardSize = 6

// Game is a playable 2048 session: a tilt engine Model plus random spawns,
// campaign progression and the pause/level-clear flow of the platform.
type Game struct {
	id    string
	title string
	mode  Mode
	cfg   config.T2048Config
	diff  *config.DifficultyManager
	model *engine.Model

	rng      *rand.Rand
	tick     uint64
	tickRate int
	moves    int

	levelIndex    int
	startLevel    int
	currentTarget int

	screenW int
	screenH int

	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// New creates a game in the given mode. The config must be valid.
func New(mode Mode, cfg config.T2048Config) *Game {
	g := &Game{
		id:    "2048",
		title: "2048",
		mode:  mode,
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg.Difficulty),
	}
	switch mode {
	case ModeCampaign:
		g.id, g.title = "2048_campaign", "2048 (Campaign)"
	case ModeEndless:
		g.id, g.title = "2048_endless", "2048 (Endless)"
	}
	g.model = engine.NewModel(cfg.Board.Size, engine.WithMaxPiece(g.winTile()))
	return g
}

// NewBig creates a classic game on a 6x6 board.
func NewBig(cfg config.T2048Config) *Game {
	cfg.Board.Size = bigBoardSize
	g := New(ModeClassic, cfg)
	g.id, g.title = "2048_big", "2048 (6x6)"
	return g
}

func init() {
	registry.Register("2048", func(cfg config.T2048Config) registry.Game {
		return New(ModeClassic, cfg)
	})
	registry.Register("2048_campaign", func(cfg config.T2048Config) registry.Game {
		return New(ModeCampaign, cfg)
	})
	registry.Register("2048_endless", func(cfg config.T2048Config) registry.Game {
		return New(ModeEndless, cfg)
	})
	registry.Register("2048_big", func(cfg config.T2048Config) registry.Game {
		return NewBig(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Model returns the underlying tilt engine state.
func (g *Game) Model() *engine.Model {
	return g.model
}

// Subscribe registers an observer on the underlying model.
func (g *Game) Subscribe(o engine.Observer) (unsubscribe func()) {
	return g.model.Subscribe(o)
}

// SetStartLevel selects the campaign level (1-based) used by the next Reset.
// 0 starts from the beginning.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = core.Clamp(level, 0, LevelCount())
}

// winTile returns the winning threshold for the current mode and level.
func (g *Game) winTile() int {
	switch g.mode {
	case ModeEndless:
		return 0
	case ModeCampaign:
		if level, ok := LevelAt(g.levelIndex); ok {
			return level.Target
		}
		return levels[len(levels)-1].Target
	default:
		return g.cfg.Rules.WinTile
	}
}

// Reset starts a new game. The best score of the session is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	}
	g.loadLevel()

	g.model.Clear()
	for range g.cfg.Rules.InitialTiles {
		g.spawnTile()
	}

	g.checkScreenSize()
}

// loadLevel applies the current level's target to the model.
func (g *Game) loadLevel() {
	g.currentTarget = g.winTile()
	g.model.SetMaxPiece(g.currentTarget)
}

// spawn4Chance returns the probability that the next spawn is a 4.
func (g *Game) spawn4Chance() float64 {
	p := g.diff.Spawn4Chance(g.cfg.Spawn, g.model.Score(), g.moves)
	if g.mode == ModeCampaign {
		if level, ok := LevelAt(g.levelIndex); ok {
			p = max(p, level.Spawn4)
		}
	}
	return p
}

// spawnTile places a 2 or a 4 on a random empty cell.
func (g *Game) spawnTile() {
	cells := g.model.EmptyCells()
	if len(cells) == 0 {
		return
	}

	cell := cells[g.rng.Intn(len(cells))]

	value := 2
	if g.rng.Float64() < g.spawn4Chance() {
		value = 4
	}

	// The cell was just reported empty, so AddTile cannot fail.
	_ = g.model.AddTile(engine.NewTile(value, cell.Col, cell.Row))
}

// checkScreenSize checks if the screen can hold the board and the HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardDims(g.cfg.Board.Size)
	g.tooSmall = g.screenW < boardW+4 || g.screenH < boardH+hudHeight+1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart after game over is handled by the platform.
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 2*g.tickRate {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	side, ok := sideFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.processMove(side)
	return core.StepResult{State: g.State(), Changed: changed}
}

// sideFor maps the first direction action in the frame to a tilt side.
func sideFor(in core.InputFrame) (engine.Side, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.North, true
	case in.Has(core.ActionDown):
		return engine.South, true
	case in.Has(core.ActionLeft):
		return engine.West, true
	case in.Has(core.ActionRight):
		return engine.East, true
	}
	return 0, false
}

// processMove tilts the board and spawns a tile if anything moved.
func (g *Game) processMove(side engine.Side) bool {
	if !g.model.Tilt(side) {
		return false
	}
	g.moves++

	if g.currentTarget > 0 && g.model.MaxTile() >= g.currentTarget {
		if g.mode == ModeCampaign {
			g.levelCleared = true
			g.levelClearTicks = 0
		} else {
			g.model.GameOver()
			g.won = true
		}
		return true
	}

	g.spawnTile()

	if g.model.GameOver() {
		g.gameOver = true
	}
	return true
}

// advanceLevel moves to the next campaign level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.model.GameOver()
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.model.Score(),
		MaxScore: g.model.MaxScore(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}
