package core

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, want 6/8", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 4 || y != 5 {
		t.Errorf("Center() = (%d, %d), want (4, 5)", x, y)
	}

	points := []struct {
		x, y int
		in   bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 4, false},
	}
	for _, p := range points {
		if got := r.Contains(p.x, p.y); got != p.in {
			t.Errorf("Contains(%d, %d) = %v, want %v", p.x, p.y, got, p.in)
		}
	}
}

func TestCenteredRectRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{6, 3}, {7, 4}, {1, 1}} {
		r := CenteredRect(10, 5, size[0], size[1])
		if x, y := r.Center(); x != 10 || y != 5 {
			t.Errorf("CenteredRect(10, 5, %d, %d).Center() = (%d, %d)", size[0], size[1], x, y)
		}
	}
}

func TestClamp(t *testing.T) {
	for _, tc := range [][4]int{
		// v, lo, hi, want
		{3, 0, 7, 3},
		{-1, 0, 7, 0},
		{9, 0, 7, 7},
	} {
		if got := Clamp(tc[0], tc[1], tc[2]); got != tc[3] {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc[0], tc[1], tc[2], got, tc[3])
		}
	}
}
