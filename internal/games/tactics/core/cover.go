package core

// CoverKind grades how protected one side of a tile is.
type CoverKind int

const (
	CoverNone CoverKind = iota
	CoverHalf
	CoverFull
)

// String returns a human-readable name for the cover kind.
func (k CoverKind) String() string {
	switch k {
	case CoverHalf:
		return "half"
	case CoverFull:
		return "full"
	default:
		return "none"
	}
}

// sideDirs maps each side to its cardinal offset.
var sideDirs = map[Side][2]int{
	SideNorth: {0, -1},
	SideEast:  {1, 0},
	SideSouth: {0, 1},
	SideWest:  {-1, 0},
}

// sideDiags maps each side to the two diagonal offsets flanking it.
var sideDiags = map[Side][2][2]int{
	SideNorth: {{-1, -1}, {1, -1}},
	SideEast:  {{1, -1}, {1, 1}},
	SideSouth: {{-1, 1}, {1, 1}},
	SideWest:  {{-1, -1}, {-1, 1}},
}

// TileCover computes the cover on each side of a tile. A side has full cover
// when the adjacent cardinal tile is a wall or out of bounds, half cover
// when either diagonal near that side is a wall and the cardinal is not.
func TileCover(g *Grid, c Coord) map[Side]CoverKind {
	cover := map[Side]CoverKind{
		SideNorth: CoverNone,
		SideEast:  CoverNone,
		SideSouth: CoverNone,
		SideWest:  CoverNone,
	}
	for side, d := range sideDirs {
		adj := c.Add(d[0], d[1])
		// TerrainAt reports walls outside the map, so the grid edge grants
		// full cover like any wall.
		if !g.TerrainAt(adj).Walkable() {
			cover[side] = CoverFull
			continue
		}
		for _, dd := range sideDiags[side] {
			diag := c.Add(dd[0], dd[1])
			if g.InBounds(diag) && !g.TerrainAt(diag).Walkable() {
				cover[side] = CoverHalf
				break
			}
		}
	}
	return cover
}

// CoverAgainst returns the cover the target tile presents toward a shooter:
// the cover of the side facing the shooter. CoverNone means flanked.
func CoverAgainst(g *Grid, shooter, target Coord) CoverKind {
	cv := TileCover(g, target)
	return cv[FacingSide(shooter, target)]
}

// CoverLabel formats a tile's cover as a compact HUD string, e.g. "N:F E:H".
func CoverLabel(cv map[Side]CoverKind) string {
	order := []Side{SideNorth, SideEast, SideSouth, SideWest}
	out := ""
	for _, s := range order {
		switch cv[s] {
		case CoverFull:
			out += s.String() + ":F "
		case CoverHalf:
			out += s.String() + ":H "
		}
	}
	if out == "" {
		return "None"
	}
	return out[:len(out)-1]
}
