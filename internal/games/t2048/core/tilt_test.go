package core

import (
	"math/rand"
	"testing"
)

func mustModel(t *testing.T, rows [][]int, score int) *Model {
	t.Helper()
	m, err := NewModelFromValues(rows, score, 0)
	if err != nil {
		t.Fatalf("NewModelFromValues() failed: %v", err)
	}
	return m
}

func TestTilt(t *testing.T) {
	tests := []struct {
		name    string
		side    Side
		before  [][]int
		after   [][]int
		score   int
		changed bool
	}{
		{
			name: "three in a column toward the top",
			side: North,
			before: [][]int{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "four equal make two pairs",
			side: North,
			before: [][]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   8,
			changed: true,
		},
		{
			name: "merged tile does not merge again",
			side: North,
			before: [][]int{
				{4, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "merge result next to an equal tile",
			side: North,
			before: [][]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "two different pairs",
			side: North,
			before: [][]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{4, 0, 0, 0},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   12,
			changed: true,
		},
		{
			name: "three in a row toward the east",
			side: East,
			before: [][]int{
				{2, 2, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			after: [][]int{
				{0, 0, 2, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "three in a column toward the bottom",
			side: South,
			before: [][]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			after: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "rows toward the west",
			side: West,
			before: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score:   20,
			changed: true,
		},
		{
			name: "columns toward the top",
			side: North,
			before: [][]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			after: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   16,
			changed: true,
		},
		{
			name: "columns toward the bottom",
			side: South,
			before: [][]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			after: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score:   16,
			changed: true,
		},
		{
			name: "merge across a gap",
			side: West,
			before: [][]int{
				{2, 0, 0, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			after: [][]int{
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   4,
			changed: true,
		},
		{
			name: "already at rest",
			side: West,
			before: [][]int{
				{4, 2, 0, 0},
				{8, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			after: [][]int{
				{4, 2, 0, 0},
				{8, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   0,
			changed: false,
		},
		{
			name: "empty board",
			side: East,
			before: [][]int{
				{0, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			after: [][]int{
				{0, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			score:   0,
			changed: false,
		},
		{
			name: "single tile slides to the corner",
			side: South,
			before: [][]int{
				{0, 0, 0},
				{0, 16, 0},
				{0, 0, 0},
			},
			after: [][]int{
				{0, 0, 0},
				{0, 0, 0},
				{0, 16, 0},
			},
			score:   0,
			changed: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustModel(t, tc.before, 10)

			changed := m.Tilt(tc.side)

			if changed != tc.changed {
				t.Errorf("Tilt(%v) changed = %v, want %v", tc.side, changed, tc.changed)
			}
			if got := m.Values(); !sameValues(got, tc.after) {
				t.Errorf("Tilt(%v): got\n%v\nwant\n%v", tc.side, got, tc.after)
			}
			if m.Score() != 10+tc.score {
				t.Errorf("Tilt(%v) score = %d, want %d", tc.side, m.Score(), 10+tc.score)
			}
			if p := m.board.Perspective(); p != North {
				t.Errorf("perspective after Tilt(%v) = %v, want north", tc.side, p)
			}
		})
	}
}

func TestTiltEndToEnd(t *testing.T) {
	m := NewModel(4)
	for row, v := range []int{2, 2, 2} {
		if err := m.AddTile(NewTile(v, 0, row)); err != nil {
			t.Fatalf("AddTile() failed: %v", err)
		}
	}

	if !m.Tilt(North) {
		t.Fatal("Tilt(North) should report a change")
	}

	want := []int{0, 0, 2, 4} // bottom to top
	for row, v := range want {
		tile := m.Tile(0, row)
		got := 0
		if tile != nil {
			got = tile.Value()
		}
		if got != v {
			t.Errorf("column 0 row %d = %d, want %d", row, got, v)
		}
	}
	if m.Score() != 4 {
		t.Errorf("Score() = %d, want 4", m.Score())
	}
}

func TestTiltInvalidSide(t *testing.T) {
	m := mustModel(t, [][]int{
		{0, 2},
		{0, 0},
	}, 0)

	if m.Tilt(Side(7)) {
		t.Error("Tilt with an invalid side should not change the board")
	}
	if res := tilt(nil, North); res.Changed {
		t.Error("tilt on a nil board should report unchanged")
	}
}

func TestTiltRoundTrip(t *testing.T) {
	// Distinct values resting against the bottom; no merge is possible
	// vertically.
	rows := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 8, 0},
		{4, 16, 2, 32},
	}

	for _, side := range Sides {
		m := mustModel(t, rows, 0)
		// Settle toward side first so the opposite tilt has somewhere to go.
		m.Tilt(side)
		settled := m.Values()

		m.Tilt(side.Opposite())
		m.Tilt(side)

		if got := m.Values(); !sameValues(got, settled) {
			t.Errorf("%v/%v round trip: got %v, want %v", side, side.Opposite(), got, settled)
		}
		if m.Score() != 0 {
			t.Errorf("%v round trip scored %d, want 0", side, m.Score())
		}
	}
}

func TestTiltIdempotentAtRest(t *testing.T) {
	rows := [][]int{
		{2, 2, 4, 8},
		{0, 4, 4, 0},
		{2, 0, 2, 2},
		{8, 8, 8, 8},
	}

	for _, side := range Sides {
		m := mustModel(t, rows, 0)
		for range m.Size() * m.Size() {
			if !m.Tilt(side) {
				break
			}
		}
		resolved := m.Values()
		score := m.Score()

		if m.Tilt(side) {
			t.Errorf("Tilt(%v) on a resolved board reported a change", side)
		}
		if !sameValues(m.Values(), resolved) || m.Score() != score {
			t.Errorf("Tilt(%v) on a resolved board modified it", side)
		}
		if len(m.LastMoves()) != 0 {
			t.Errorf("Tilt(%v) on a resolved board recorded %d moves", side, len(m.LastMoves()))
		}
	}
}

// TestTiltRandomInvariants checks the merge rules on random boards: each
// destination takes at most one merge per tilt, the score gain is the sum of
// merged values, and every merge removes exactly one tile.
func TestTiltRandomInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	values := []int{0, 0, 2, 2, 4, 4, 8, 16}

	for i := range 500 {
		size := 2 + rng.Intn(4)
		rows := make([][]int, size)
		for r := range rows {
			rows[r] = make([]int, size)
			for c := range rows[r] {
				rows[r][c] = values[rng.Intn(len(values))]
			}
		}
		side := Sides[rng.Intn(len(Sides))]

		m := mustModel(t, rows, 0)
		before := countTiles(m.Values())
		beforeSum := sumTiles(m.Values())

		changed := m.Tilt(side)

		mergedAt := make(map[Cell]int)
		wantGain := 0
		for _, mv := range m.LastMoves() {
			if mv.Merged {
				mergedAt[Cell{Col: mv.ToCol, Row: mv.ToRow}]++
				wantGain += 2 * mv.Value
			}
		}
		for cell, n := range mergedAt {
			if n > 1 {
				t.Fatalf("case %d: %d merges landed on %v in one %v tilt", i, n, cell, side)
			}
		}
		if m.Score() != wantGain {
			t.Fatalf("case %d: score gain = %d, want %d", i, m.Score(), wantGain)
		}
		if got := countTiles(m.Values()); got != before-len(mergedAt) {
			t.Fatalf("case %d: %d tiles after %d merges, started with %d", i, got, len(mergedAt), before)
		}
		if got := sumTiles(m.Values()); got != beforeSum {
			t.Fatalf("case %d: tile sum changed from %d to %d", i, beforeSum, got)
		}
		if changed != (len(m.LastMoves()) > 0) {
			t.Fatalf("case %d: changed = %v with %d moves", i, changed, len(m.LastMoves()))
		}
		assertPacked(t, m, side)
	}
}

// assertPacked fails if any tile has an empty cell ahead of it toward side.
func assertPacked(t *testing.T, m *Model, side Side) {
	t.Helper()
	m.board.SetViewingPerspective(side)
	defer m.board.SetViewingPerspective(North)

	size := m.Size()
	for col := range size {
		seenEmpty := false
		for row := size - 1; row >= 0; row-- {
			if m.board.Tile(col, row) == nil {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("tile behind a gap after %v tilt: %v", side, m.Values())
			}
		}
	}
}

func countTiles(rows [][]int) int {
	n := 0
	for _, r := range rows {
		for _, v := range r {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func sumTiles(rows [][]int) int {
	s := 0
	for _, r := range rows {
		for _, v := range r {
			s += v
		}
	}
	return s
}
