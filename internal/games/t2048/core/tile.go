package core

import "fmt"

// Tile is a numbered piece on the board. Its value never changes; a merge
// produces a new Tile of double value.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile creates a tile with the given value at (col, row).
func NewTile(value, col, row int) *Tile {
	return &Tile{value: value, col: col, row: row}
}

// Value returns the tile's number.
func (t *Tile) Value() int {
	return t.value
}

// Col returns the tile's column in North-facing coordinates.
func (t *Tile) Col() int {
	return t.col
}

// Row returns the tile's row in North-facing coordinates.
func (t *Tile) Row() int {
	return t.row
}

func (t *Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.value, t.col, t.row)
}

// MoveResult is the outcome of placing one tile during a tilt.
type MoveResult int

const (
	Stayed MoveResult = iota // already at its destination
	Moved                    // slid into an empty cell
	Merged                   // combined with an equal tile
)

func (r MoveResult) String() string {
	switch r {
	case Stayed:
		return "stayed"
	case Moved:
		return "moved"
	case Merged:
		return "merged"
	default:
		return "unknown"
	}
}

// TileMove records one relocation during a tilt, in North-facing coordinates.
type TileMove struct {
	FromCol int
	FromRow int
	ToCol   int
	ToRow   int
	Value   int  // value before the move
	Merged  bool // whether the tile merged at its destination
}
