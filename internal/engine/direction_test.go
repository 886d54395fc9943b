package engine

import "testing"

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Vector()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Vector() = (%d,%d), want (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDirectionOpposites(t *testing.T) {
	tests := []struct {
		dir, opp Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.opp {
			t.Errorf("%v.Opposite() = %v, want %v", tc.dir, got, tc.opp)
		}
		// Opposite is an involution.
		if got := tc.dir.Opposite().Opposite(); got != tc.dir {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.dir, got)
		}
	}
}

func TestBoardContains(t *testing.T) {
	b := Board{Cols: 10, Rows: 5, CellSize: 10}

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"inside", Position{X: 4, Y: 2}, true},
		{"origin", Position{X: 0, Y: 0}, true},
		{"bottom-right corner", Position{X: 9, Y: 4}, true},
		{"past right edge", Position{X: 10, Y: 2}, false},
		{"past bottom edge", Position{X: 4, Y: 5}, false},
		{"negative column", Position{X: -1, Y: 2}, false},
		{"negative row", Position{X: 4, Y: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}
