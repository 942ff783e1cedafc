package core

import (
	"fmt"
	"strings"
)

// DefaultMaxPiece is the tile value that ends a classic game.
const DefaultMaxPiece = 2048

// Model is the state of one 2048 game: the board, the score, the best
// score seen at a game over, and the observers to notify on change.
//
// A Model is not safe for concurrent use.
type Model struct {
	board     *Board
	score     int
	maxScore  int
	maxPiece  int
	gameOver  bool
	lastMoves []TileMove

	observers []subscription
	nextSubID int
}

type subscription struct {
	id int
	o  Observer
}

// Option configures a Model.
type Option func(*Model)

// WithMaxPiece sets the winning tile value. 0 disables the win condition.
func WithMaxPiece(v int) Option {
	return func(m *Model) {
		m.maxPiece = v
	}
}

// NewModel creates an empty game on a size x size board.
func NewModel(size int, opts ...Option) *Model {
	m := &Model{
		board:    NewBoard(size),
		maxPiece: DefaultMaxPiece,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewModelFromValues creates a game from tile values laid out top row first
// (0 = empty) with the given score and max score.
func NewModelFromValues(rows [][]int, score, maxScore int, opts ...Option) (*Model, error) {
	b, err := NewBoardFromValues(rows)
	if err != nil {
		return nil, err
	}
	m := &Model{
		board:    b,
		score:    score,
		maxScore: maxScore,
		maxPiece: DefaultMaxPiece,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.checkGameOver()
	return m, nil
}

// Tile returns the tile at (col, row), or nil if the cell is empty.
func (m *Model) Tile(col, row int) *Tile {
	return m.board.Tile(col, row)
}

// Size returns the board's side length.
func (m *Model) Size() int {
	return m.board.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score recorded at a game over.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// MaxPiece returns the winning tile value (0 when disabled).
func (m *Model) MaxPiece() int {
	return m.maxPiece
}

// SetMaxPiece changes the winning tile value.
func (m *Model) SetMaxPiece(v int) {
	m.maxPiece = v
}

// Values returns the tile values top row first, 0 for empty cells.
func (m *Model) Values() [][]int {
	return m.board.Values()
}

// EmptyCells returns every empty cell.
func (m *Model) EmptyCells() []Cell {
	return EmptyCells(m.board)
}

// MaxTile returns the largest tile value on the board.
func (m *Model) MaxTile() int {
	return MaxTile(m.board)
}

// MovesExist reports whether any tilt could still change the board.
func (m *Model) MovesExist() bool {
	return AtLeastOneMoveExists(m.board)
}

// LastMoves returns the relocations made by the most recent tilt.
func (m *Model) LastMoves() []TileMove {
	return m.lastMoves
}

// GameOver reports whether the game has ended: the winning tile is on the
// board or no move is left. It is recomputed on every call, and the max
// score is raised to the current score when it returns true.
func (m *Model) GameOver() bool {
	m.checkGameOver()
	return m.gameOver
}

func (m *Model) checkGameOver() {
	m.gameOver = gameOver(m.board, m.maxPiece)
	if m.gameOver {
		m.maxScore = max(m.score, m.maxScore)
	}
}

// Clear empties the board and resets the score. The max score is kept.
func (m *Model) Clear() {
	m.score = 0
	m.gameOver = false
	m.lastMoves = nil
	m.board.Clear()
	m.notify(EventClear)
}

// AddTile places t on the board. It fails if the cell is taken or off the
// board.
func (m *Model) AddTile(t *Tile) error {
	if err := m.board.AddTile(t); err != nil {
		return err
	}
	m.checkGameOver()
	m.notify(EventAddTile)
	return nil
}

// Tilt slides the board toward side and returns true if anything moved or
// merged. Merges add the value of each new tile to the score.
//
// Tilting in an invalid direction is a no-op.
func (m *Model) Tilt(side Side) bool {
	res := tilt(m.board, side)
	m.lastMoves = res.Moves
	m.score += res.Score
	m.checkGameOver()
	if res.Changed {
		m.notify(EventTilt)
	}
	return res.Changed
}

// Subscribe registers o for change notifications and returns a function
// that removes it.
func (m *Model) Subscribe(o Observer) (unsubscribe func()) {
	m.nextSubID++
	id := m.nextSubID
	m.observers = append(m.observers, subscription{id: id, o: o})
	return func() {
		for i, s := range m.observers {
			if s.id == id {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) notify(ev Event) {
	for _, s := range m.observers {
		s.o.Changed(m, ev)
	}
}

// String renders the board top row first, followed by the scores and the
// game-over status.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	for row := m.Size() - 1; row >= 0; row-- {
		for col := range m.Size() {
			if t := m.Tile(col, row); t == nil {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "|%4d", t.Value())
			}
		}
		sb.WriteString("|\n")
	}
	over := "not over"
	if m.GameOver() {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.Score(), m.MaxScore(), over)
	return sb.String()
}

// Equal reports whether m and other render identically.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.String() == other.String()
}
