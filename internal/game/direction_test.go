package game

import "testing"

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Vector()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Vector() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestDirection_Opposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%s.Opposite() = %s, want %s", tt.dir, got, tt.want)
		}
		// An opposite's opposite is the original direction.
		if got := tt.dir.Opposite().Opposite(); got != tt.dir {
			t.Errorf("double opposite of %s = %s", tt.dir, got)
		}
	}
}
