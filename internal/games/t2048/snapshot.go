package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Level    int // 1-based campaign level, 0 outside the campaign
	Target   int // Winning tile, 0 when disabled
	Score    int
	MaxScore int
	Moves    int
	Board    [][]int // Top row first
	MaxTile  int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    level,
		Target:   g.currentTarget,
		Score:    g.model.Score(),
		MaxScore: g.model.MaxScore(),
		Moves:    g.moves,
		Board:    g.model.Values(),
		MaxTile:  g.model.MaxTile(),
		State:    state,
	}
}
