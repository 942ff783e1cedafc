package config

// Progression types accepted in DifficultyConfig.Progression.Type.
const (
	ProgressNone  = "none"
	ProgressScore = "score"
	ProgressMoves = "moves"
)

// DifficultyManager turns game progress into a spawn difficulty.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether difficulty grows during a game.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressMoves:
		return d.cfg.Enabled
	}
	return false
}

// Level returns the difficulty in [0, 1]. It starts at the initial level and
// reaches 1 once score or moves (per the progression type) hit MaxAt.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	progress := score
	if d.cfg.Progression.Type == ProgressMoves {
		progress = moves
	}
	span := float64(max(d.cfg.Progression.MaxAt, 1))
	return d.start + unit(float64(progress)/span)*(1-d.start)
}

// Spawn4Chance returns the probability of spawning a 4: Spawn4 at level 0
// and Spawn4Max at level 1.
func (d *DifficultyManager) Spawn4Chance(spawn T2048Spawn, score, moves int) float64 {
	lvl := d.Level(score, moves)
	return unit(spawn.Spawn4 + lvl*(spawn.Spawn4Max-spawn.Spawn4))
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
