// Package core holds the platform types shared by games and front-ends:
// runtime config, input actions, a colored cell screen and small geometry
// helpers. It does not depend on Bubble Tea.
package core

// Rect is an axis-aligned area of the screen; (X, Y) is its top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w x h rectangle whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns the w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h int) Rect {
	return NewRect(cx-w/2, cy-h/2, w, h)
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the bottom-right.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
