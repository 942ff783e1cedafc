package core

// RuntimeConfig describes the environment a game runs in.
type RuntimeConfig struct {
	ScreenW  int   // columns available to the game
	ScreenH  int   // rows available to the game
	TickRate int   // simulation ticks per second
	Seed     int64 // spawn RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int
	MaxScore int // best score seen at a game over this session
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State   GameState
	Changed bool // the board moved this tick
}
