package core

// TiltResult summarizes one tilt.
type TiltResult struct {
	Changed bool       // any tile moved or merged
	Score   int        // sum of the values of tiles created by merges
	Moves   []TileMove // relocations, North-facing
}

// columnTrace is the per-column state of the tilt pass.
type columnTrace struct {
	top    int  // highest row not yet finalized as a destination
	prev   int  // value waiting at top; 0 before the first tile
	merged bool // whether the last placement merged
}

// tilt slides every tile of b toward side, merging equal neighbors.
//
// The board is viewed from side so that the pass always pushes toward the
// top row. Each column is scanned from the top down, so tiles nearer the
// destination settle first and a tile produced by a merge is never revisited.
// The perspective is back to North when tilt returns.
func tilt(b *Board, side Side) TiltResult {
	var res TiltResult
	if b == nil || !side.Valid() {
		return res
	}

	b.SetViewingPerspective(side)
	defer b.SetViewingPerspective(North)

	size := b.Size()
	for col := range size {
		tr := columnTrace{top: size - 1}
		for row := size - 1; row >= 0; row-- {
			t := b.Tile(col, row)
			if t == nil {
				continue
			}

			var r MoveResult
			switch {
			case tr.prev == 0:
				tr.prev = t.Value()
				r = res.place(b, col, tr.top, t)
			case t.Value() == tr.prev:
				r = res.place(b, col, tr.top, t)
				if r == Merged {
					res.Score += b.Tile(col, tr.top).Value()
					tr.top--
				}
			default:
				tr.prev = t.Value()
				if !tr.merged {
					tr.top--
				}
				r = res.place(b, col, tr.top, t)
			}
			tr.merged = r == Merged
		}
	}
	return res
}

// place moves t to logical (col, row) and records the outcome.
func (res *TiltResult) place(b *Board, col, row int, t *Tile) MoveResult {
	fromCol, fromRow := t.Col(), t.Row()
	r := b.Move(col, row, t)
	if r == Stayed {
		return r
	}
	toCol, toRow := b.view.physical(col, row, b.size)
	res.Moves = append(res.Moves, TileMove{
		FromCol: fromCol,
		FromRow: fromRow,
		ToCol:   toCol,
		ToRow:   toRow,
		Value:   t.Value(),
		Merged:  r == Merged,
	})
	res.Changed = true
	return r
}
