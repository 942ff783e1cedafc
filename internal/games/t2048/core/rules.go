package core

// Cell is an empty board position in North-facing coordinates.
type Cell struct {
	Col, Row int
}

// EmptySpaceExists returns true if at least one cell of b is empty.
func EmptySpaceExists(b *Board) bool {
	if b == nil {
		return false
	}
	for col := range b.size {
		for row := range b.size {
			if b.cells[col][row] == nil {
				return true
			}
		}
	}
	return false
}

// MaxTileExists returns true if any tile equals maxPiece.
// A maxPiece of 0 never matches.
func MaxTileExists(b *Board, maxPiece int) bool {
	if b == nil || maxPiece <= 0 {
		return false
	}
	for t := range b.Tiles() {
		if t.value == maxPiece {
			return true
		}
	}
	return false
}

// AtLeastOneMoveExists returns true if some tilt would change b: either a
// cell is empty or two edge-adjacent tiles hold the same value.
func AtLeastOneMoveExists(b *Board) bool {
	if b == nil {
		return false
	}
	if EmptySpaceExists(b) {
		return true
	}
	for col := range b.size {
		for row := range b.size {
			v := b.cells[col][row].value
			if col+1 < b.size && b.cells[col+1][row].value == v {
				return true
			}
			if row+1 < b.size && b.cells[col][row+1].value == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value on b, or 0 if it is empty.
func MaxTile(b *Board) int {
	if b == nil {
		return 0
	}
	maxVal := 0
	for t := range b.Tiles() {
		maxVal = max(maxVal, t.value)
	}
	return maxVal
}

// EmptyCells returns every empty cell of b.
func EmptyCells(b *Board) []Cell {
	if b == nil {
		return nil
	}
	var cells []Cell
	for col := range b.size {
		for row := range b.size {
			if b.cells[col][row] == nil {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// gameOver reports whether no further play is possible on b.
func gameOver(b *Board, maxPiece int) bool {
	if b == nil {
		return false
	}
	return MaxTileExists(b, maxPiece) || !AtLeastOneMoveExists(b)
}
