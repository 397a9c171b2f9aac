// Package game implements the snake simulation: grid state, scoring,
// power-ups, particle effects and panel rendering.
package game

// Direction is a movement direction on the grid. Each variant carries
// its unit vector, so invalid directions are unrepresentable.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the unit grid step for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the 180-degree reversal of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the display name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "RIGHT"
	}
}
