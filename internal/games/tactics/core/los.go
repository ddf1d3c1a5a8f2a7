package core

// BresenhamLine returns the tiles from a to b inclusive.
func BresenhamLine(a, b Coord) []Coord {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	line := make([]Coord, 0, dx-dy+1)
	for {
		line = append(line, C(x0, y0))
		if x0 == x1 && y0 == y1 {
			return line
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// LOSClear reports whether the straight line from a to b crosses no blocked
// tiles. The source tile is skipped and the target tile itself may be
// blocked (you can see a wall, just not through it).
func LOSClear(g *Grid, a, b Coord) bool {
	line := BresenhamLine(a, b)
	for _, c := range line[1:] {
		if c.Equal(b) {
			return true
		}
		if !g.TerrainAt(c).Walkable() {
			return false
		}
	}
	return true
}

// Side names one edge of a tile.
type Side int

const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
)

// String returns the compass letter for the side.
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "N"
	case SideEast:
		return "E"
	case SideSouth:
		return "S"
	case SideWest:
		return "W"
	default:
		return "?"
	}
}

// FacingSide maps the shot direction onto a side of the target tile by
// dominant axis: a shot travelling east selects SideEast. Ties go to the
// horizontal axis.
func FacingSide(from, to Coord) Side {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return SideWest
		}
		return SideEast
	}
	if dy < 0 {
		return SideNorth
	}
	return SideSouth
}
