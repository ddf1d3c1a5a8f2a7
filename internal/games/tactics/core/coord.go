// Package core provides the core battle logic for the tactics game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation pure, deterministic and testable.
package core

import "fmt"

// Coord represents a 2D tile coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Chebyshev returns the Chebyshev (king-move) distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	dx := abs(c.X - other.X)
	dy := abs(c.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Adjacency selects the movement neighborhood for a grid.
type Adjacency int

const (
	// Adjacency4 allows cardinal moves only.
	Adjacency4 Adjacency = iota
	// Adjacency8 also allows diagonal moves.
	Adjacency8
)

// String returns a human-readable name for the adjacency mode.
func (a Adjacency) String() string {
	switch a {
	case Adjacency4:
		return "4-way"
	case Adjacency8:
		return "8-way"
	default:
		return "Unknown"
	}
}

// cardinalDeltas are the 4 cardinal step offsets.
var cardinalDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// diagonalDeltas are the 4 diagonal step offsets.
var diagonalDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
