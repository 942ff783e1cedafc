// Package t2048 implements the playable 2048 game on top of the tilt engine
// in t2048/core: random spawns, campaign levels and screen rendering.
package t2048

// Level is one stage of the campaign. Reaching Target clears it; Spawn4 is
// the lowest chance of a 4 while it is played.
type Level struct {
	Number int
	Name   string
	Target int
	Spawn4 float64
}

var levels = []Level{
	{Number: 1, Name: "Corner Habit", Target: 128, Spawn4: 0.10},
	{Number: 2, Name: "Snake Chain", Target: 256, Spawn4: 0.10},
	{Number: 3, Name: "Half Way", Target: 512, Spawn4: 0.10},
	{Number: 4, Name: "Kilotile", Target: 1024, Spawn4: 0.10},
	{Number: 5, Name: "The Classic", Target: 2048, Spawn4: 0.10},
	{Number: 6, Name: "Overtime", Target: 4096, Spawn4: 0.12},
	{Number: 7, Name: "Endgame", Target: 8192, Spawn4: 0.15},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// LevelAt returns the level at index i (0-based).
func LevelAt(i int) (Level, bool) {
	if i < 0 || i >= len(levels) {
		return Level{}, false
	}
	return levels[i], true
}
