// Package config provides YAML-based game configuration loading and
// difficulty management for tilt2048.
package config

import "fmt"

// T2048Config contains all configuration for a 2048 game.
type T2048Config struct {
	Board      T2048Board       `yaml:"board"`
	Rules      T2048Rules       `yaml:"rules"`
	Spawn      T2048Spawn       `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// T2048Board defines the board geometry.
type T2048Board struct {
	Size int `yaml:"size"`
}

// T2048Rules defines win and setup rules.
type T2048Rules struct {
	WinTile      int `yaml:"win_tile"`      // Tile value that ends the game; 0 disables
	InitialTiles int `yaml:"initial_tiles"` // Tiles spawned at the start of a game
}

// T2048Spawn defines random tile spawning.
type T2048Spawn struct {
	Spawn4    float64 `yaml:"spawn4"`     // Probability of a 4 instead of a 2 at difficulty 0
	Spawn4Max float64 `yaml:"spawn4_max"` // Probability of a 4 at difficulty 1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// Validate checks that the configuration describes a playable game.
func (c T2048Config) Validate() error {
	if c.Board.Size < 2 || c.Board.Size > 8 {
		return fmt.Errorf("config: board size %d out of range [2, 8]", c.Board.Size)
	}
	if w := c.Rules.WinTile; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("config: win tile %d is not a power of two >= 4", w)
	}
	if n := c.Rules.InitialTiles; n < 0 || n > c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: %d initial tiles do not fit a %dx%d board", n, c.Board.Size, c.Board.Size)
	}
	if p := c.Spawn.Spawn4; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn4 %.2f out of range [0, 1]", p)
	}
	if p := c.Spawn.Spawn4Max; p < c.Spawn.Spawn4 || p > 1 {
		return fmt.Errorf("config: spawn4_max %.2f out of range [%.2f, 1]", p, c.Spawn.Spawn4)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressNone, ProgressScore, ProgressMoves:
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
