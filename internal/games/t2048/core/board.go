package core

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrOccupied is returned when a tile is placed on a taken cell.
	ErrOccupied = errors.New("core: cell already occupied")
	// ErrOutOfRange is returned for coordinates outside the board.
	ErrOutOfRange = errors.New("core: coordinate out of range")
)

// Board is a square grid of tiles with a switchable viewing perspective.
//
// Storage is always North-facing. Every coordinate passed to Tile, Move and
// AddTile is logical: it is remapped through the current perspective, so code
// written to push tiles toward the top row works for any side.
type Board struct {
	size  int
	cells [][]*Tile // [col][row], North-facing
	view  Side
}

// NewBoard creates an empty board of the given side length.
// It panics if size is not positive.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("core: invalid board size %d", size))
	}
	b := &Board{size: size, view: North}
	b.cells = make([][]*Tile, size)
	for col := range b.cells {
		b.cells[col] = make([]*Tile, size)
	}
	return b
}

// NewBoardFromValues builds a board from tile values written the way the
// board looks: rows[0] is the top row, 0 means empty.
func NewBoardFromValues(rows [][]int) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("core: empty board")
	}
	b := NewBoard(size)
	for i, line := range rows {
		if len(line) != size {
			return nil, fmt.Errorf("core: row %d has %d cells, want %d", i, len(line), size)
		}
		row := size - 1 - i
		for col, v := range line {
			if v == 0 {
				continue
			}
			if v < 0 {
				return nil, fmt.Errorf("core: negative tile value %d at (%d, %d)", v, col, row)
			}
			b.cells[col][row] = NewTile(v, col, row)
		}
	}
	return b, nil
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// Perspective returns the current viewing perspective.
func (b *Board) Perspective() Side {
	return b.view
}

// SetViewingPerspective makes s the logical top of the board for all
// following coordinate accesses. Tiles are not moved.
func (b *Board) SetViewingPerspective(s Side) {
	if !s.Valid() {
		panic(fmt.Sprintf("core: invalid perspective %v", s))
	}
	b.view = s
}

func (b *Board) inRange(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}

// Tile returns the tile at logical (col, row), or nil if the cell is empty.
// It panics if the coordinate is off the board.
func (b *Board) Tile(col, row int) *Tile {
	if !b.inRange(col, row) {
		panic(fmt.Sprintf("core: tile (%d, %d) out of range for size %d", col, row, b.size))
	}
	pc, pr := b.view.physical(col, row, b.size)
	return b.cells[pc][pr]
}

// AddTile places t at its own coordinate, read in the current perspective.
func (b *Board) AddTile(t *Tile) error {
	return b.place(t, t.col, t.row)
}

// place stores t at logical (col, row) and records the North-facing
// position on the tile.
func (b *Board) place(t *Tile, col, row int) error {
	if !b.inRange(col, row) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfRange, col, row, b.size, b.size)
	}
	pc, pr := b.view.physical(col, row, b.size)
	if b.cells[pc][pr] != nil {
		return fmt.Errorf("%w: (%d, %d) holds %d", ErrOccupied, col, row, b.cells[pc][pr].value)
	}
	t.col, t.row = pc, pr
	b.cells[pc][pr] = t
	return nil
}

// Move relocates t to logical (col, row). An equal-valued resident merges
// with t into a new tile of double value.
//
// The caller guarantees that t is on this board and that the destination is
// empty, holds t, or holds an equal value; anything else panics.
func (b *Board) Move(col, row int, t *Tile) MoveResult {
	if !b.inRange(col, row) {
		panic(fmt.Sprintf("core: move to (%d, %d) out of range for size %d", col, row, b.size))
	}
	if b.cells[t.col][t.row] != t {
		panic(fmt.Sprintf("core: tile %v is not on the board", t))
	}
	pc, pr := b.view.physical(col, row, b.size)
	if pc == t.col && pr == t.row {
		return Stayed
	}

	resident := b.cells[pc][pr]
	if resident != nil && resident.value != t.value {
		panic(fmt.Sprintf("core: cannot move %v onto %v", t, resident))
	}

	b.cells[t.col][t.row] = nil
	if resident == nil {
		t.col, t.row = pc, pr
		b.cells[pc][pr] = t
		return Moved
	}
	b.cells[pc][pr] = NewTile(2*t.value, pc, pr)
	return Merged
}

// Clear removes every tile.
func (b *Board) Clear() {
	for col := range b.cells {
		clear(b.cells[col])
	}
}

// Tiles yields every tile on the board in storage order.
func (b *Board) Tiles() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for col := range b.size {
			for row := range b.size {
				if t := b.cells[col][row]; t != nil {
					if !yield(t) {
						return
					}
				}
			}
		}
	}
}

// Values returns the tile values the way the board looks, top row first,
// with 0 for empty cells. The perspective is ignored.
func (b *Board) Values() [][]int {
	rows := make([][]int, b.size)
	for i := range rows {
		rows[i] = make([]int, b.size)
		row := b.size - 1 - i
		for col := range b.size {
			if t := b.cells[col][row]; t != nil {
				rows[i][col] = t.value
			}
		}
	}
	return rows
}

// Clone returns a deep copy of the board, perspective included.
func (b *Board) Clone() *Board {
	c := NewBoard(b.size)
	c.view = b.view
	for t := range b.Tiles() {
		c.cells[t.col][t.row] = NewTile(t.value, t.col, t.row)
	}
	return c
}
