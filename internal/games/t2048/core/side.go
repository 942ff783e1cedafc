// Package core implements the 2048 rule engine: a perspective-indexed board,
// the tilt/merge pass and the game state built on top of them.
//
// Coordinates are (column, row) with (0, 0) at the bottom-left corner, so row
// Size()-1 is the top edge.
package core

import (
	"fmt"
	"strings"
)

// Side names one edge of the board. It is both a tilt direction and a viewing
// perspective: viewing the board from a side makes that side the logical top.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists every valid side in clockwise order.
var Sides = [...]Side{North, East, South, West}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= North && s <= West
}

// Opposite returns the side facing s.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return s
	}
}

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide parses a side name, its first letter or an arrow name
// ("n", "East", "up", ...). Matching is case-insensitive.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(name) {
	case "n", "north", "up":
		return North, nil
	case "e", "east", "right":
		return East, nil
	case "s", "south", "down":
		return South, nil
	case "w", "west", "left":
		return West, nil
	}
	return 0, fmt.Errorf("core: unknown side %q", name)
}

// physical maps a logical (col, row) seen from s onto storage coordinates of
// a board of the given size.
func (s Side) physical(col, row, size int) (int, int) {
	last := size - 1
	switch s {
	case South:
		return last - col, last - row
	case East:
		return row, last - col
	case West:
		return last - row, col
	default:
		return col, row
	}
}

// logical is the inverse of physical.
func (s Side) logical(col, row, size int) (int, int) {
	last := size - 1
	switch s {
	case South:
		return last - col, last - row
	case East:
		return last - row, col
	case West:
		return row, last - col
	default:
		return col, row
	}
}
