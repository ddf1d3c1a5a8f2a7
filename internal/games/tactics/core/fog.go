package core

// TilesInRadius returns all coordinates within Chebyshev distance r of the
// origin, bounds not checked. Square "circles" are cheap and read well on a
// terminal grid.
func TilesInRadius(origin Coord, r int) []Coord {
	out := make([]Coord, 0, (2*r+1)*(2*r+1))
	for y := origin.Y - r; y <= origin.Y+r; y++ {
		for x := origin.X - r; x <= origin.X+r; x++ {
			out = append(out, C(x, y))
		}
	}
	return out
}

// VisibleSet returns the in-bounds tiles within radius of origin that have a
// clear line of sight from it.
func VisibleSet(g *Grid, origin Coord, radius int) map[Coord]bool {
	vis := make(map[Coord]bool)
	for _, c := range TilesInRadius(origin, radius) {
		if !g.InBounds(c) {
			continue
		}
		if LOSClear(g, origin, c) {
			vis[c] = true
		}
	}
	return vis
}

// Fog tracks what the player can currently see and what has ever been seen.
// When disabled, everything counts as visible.
type Fog struct {
	Enabled bool
	Radius  int

	visible  map[Coord]bool
	explored map[Coord]bool
}

// NewFog creates fog of war with the given sight radius.
func NewFog(radius int, enabled bool) *Fog {
	return &Fog{
		Enabled:  enabled,
		Radius:   radius,
		visible:  make(map[Coord]bool),
		explored: make(map[Coord]bool),
	}
}

// Recompute refreshes the visible set from the given origin and folds it
// into the explored set.
func (f *Fog) Recompute(g *Grid, origin Coord) {
	f.visible = VisibleSet(g, origin, f.Radius)
	for c := range f.visible {
		f.explored[c] = true
	}
}

// Visible reports whether the tile is currently in sight.
func (f *Fog) Visible(c Coord) bool {
	if !f.Enabled {
		return true
	}
	return f.visible[c]
}

// Explored reports whether the tile has ever been seen.
func (f *Fog) Explored(c Coord) bool {
	if !f.Enabled {
		return true
	}
	return f.explored[c]
}
