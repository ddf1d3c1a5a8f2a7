package core

import "fmt"

// Grid is the battle board: a fixed-shape rectangular tile map that owns
// per-cell terrain and occupancy. All legality checks live here, not on the
// units, so every entity kind (player, enemy, future obstacles) goes through
// identical rules. Cells are stored in row-major order: index = y*W + x.
//
// The grid is not safe for concurrent use; the battle loop is strictly
// sequential and performs one mutation at a time.
type Grid struct {
	W int // Width of the grid
	H int // Height of the grid

	// Adjacency selects 4-way or 8-way single-step movement.
	// Set before play starts; Adjacency4 by default.
	Adjacency Adjacency

	cells  []Cell
	units  map[EntityID]Coord
	nextID EntityID
}

// NewGrid creates a grid with the given dimensions and terrain map.
// Cells absent from the terrain map default to walkable ground. Terrain is
// fixed for the lifetime of the grid.
func NewGrid(w, h int, terrain map[Coord]Terrain) *Grid {
	g := &Grid{
		W:      w,
		H:      h,
		cells:  make([]Cell, w*h),
		units:  make(map[EntityID]Coord),
		nextID: 1,
	}
	for c, t := range terrain {
		if g.InBounds(c) {
			g.cells[g.index(c)].Terrain = t
		}
	}
	return g
}

// NewOpenGrid creates a grid with all cells walkable.
func NewOpenGrid(w, h int) *Grid {
	return NewGrid(w, h, nil)
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// TerrainAt returns the terrain kind at the given coordinate.
// Out-of-bounds coordinates report walls, which keeps LOS and cover
// treatment of the map edge uniform.
func (g *Grid) TerrainAt(c Coord) Terrain {
	if !g.InBounds(c) {
		return TerrainWall
	}
	return g.cells[g.index(c)].Terrain
}

// IsWalkable reports whether the terrain at c allows entry.
// Fails with ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) IsWalkable(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("walkable %v: %w", c, ErrOutOfBounds)
	}
	return g.cells[g.index(c)].Terrain.Walkable(), nil
}

// IsOccupied reports whether an entity occupies the cell at c.
// Fails with ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) IsOccupied(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("occupied %v: %w", c, ErrOutOfBounds)
	}
	return g.cells[g.index(c)].Occupant != NoEntity, nil
}

// OccupantAt returns the occupant handle at c, or NoEntity if the cell is
// empty. Fails with ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) OccupantAt(c Coord) (EntityID, error) {
	if !g.InBounds(c) {
		return NoEntity, fmt.Errorf("occupant %v: %w", c, ErrOutOfBounds)
	}
	return g.cells[g.index(c)].Occupant, nil
}

// PositionOf returns the recorded coordinate of a placed entity.
func (g *Grid) PositionOf(id EntityID) (Coord, bool) {
	c, ok := g.units[id]
	return c, ok
}

// AllocID hands out a fresh entity handle. Handles are never reused within
// one grid.
func (g *Grid) AllocID() EntityID {
	id := g.nextID
	g.nextID++
	return id
}

// PlaceEntity records id as the occupant of c. It fails with ErrOutOfBounds,
// ErrBlocked, ErrOccupied or ErrAlreadyPlaced; on failure the grid is
// unchanged.
func (g *Grid) PlaceEntity(id EntityID, c Coord) error {
	if id == NoEntity {
		return fmt.Errorf("place: invalid entity handle")
	}
	if _, ok := g.units[id]; ok {
		return fmt.Errorf("place entity %d: %w", id, ErrAlreadyPlaced)
	}
	if !g.InBounds(c) {
		return fmt.Errorf("place at %v: %w", c, ErrOutOfBounds)
	}
	cell := &g.cells[g.index(c)]
	if !cell.Terrain.Walkable() {
		return fmt.Errorf("place at %v: %w", c, ErrBlocked)
	}
	if cell.Occupant != NoEntity {
		return fmt.Errorf("place at %v: %w", c, ErrOccupied)
	}
	cell.Occupant = id
	g.units[id] = c
	return nil
}

// MoveEntity moves id from one cell to an adjacent one. Checks run in order:
// bounds (both coordinates), recorded occupancy of the source, destination
// terrain, destination occupancy, adjacency. The commit updates both cells
// together; a failed move leaves the source occupied by the original entity
// and the destination untouched, so no partial state is ever observable.
func (g *Grid) MoveEntity(id EntityID, from, to Coord) error {
	if !g.InBounds(from) {
		return fmt.Errorf("move from %v: %w", from, ErrOutOfBounds)
	}
	if !g.InBounds(to) {
		return fmt.Errorf("move to %v: %w", to, ErrOutOfBounds)
	}
	src := &g.cells[g.index(from)]
	if src.Occupant != id {
		return fmt.Errorf("move from %v by entity %d: %w", from, id, ErrNotOccupant)
	}
	dst := &g.cells[g.index(to)]
	if !dst.Terrain.Walkable() {
		return fmt.Errorf("move to %v: %w", to, ErrBlocked)
	}
	if dst.Occupant != NoEntity && dst.Occupant != id {
		return fmt.Errorf("move to %v: %w", to, ErrOccupied)
	}
	if !g.stepLegal(from, to) {
		return fmt.Errorf("move %v -> %v: %w", from, to, ErrNotAdjacent)
	}
	src.Occupant = NoEntity
	dst.Occupant = id
	g.units[id] = to
	return nil
}

// RemoveEntity clears the entity's cell and drops it from the registry.
// The handle becomes invalid for further moves.
func (g *Grid) RemoveEntity(id EntityID) error {
	c, ok := g.units[id]
	if !ok {
		return fmt.Errorf("remove entity %d: %w", id, ErrNotOccupant)
	}
	g.cells[g.index(c)].Occupant = NoEntity
	delete(g.units, id)
	return nil
}

// stepLegal reports whether from->to is a single step under the grid's
// adjacency mode. Diagonal steps may not cut corners: at least one of the
// two orthogonal neighbors shared with the destination must be walkable.
func (g *Grid) stepLegal(from, to Coord) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return false
	}
	if abs(dx) > 1 || abs(dy) > 1 {
		return false
	}
	if dx != 0 && dy != 0 {
		if g.Adjacency != Adjacency8 {
			return false
		}
		sideA := g.TerrainAt(C(from.X+dx, from.Y))
		sideB := g.TerrainAt(C(from.X, from.Y+dy))
		if !sideA.Walkable() && !sideB.Walkable() {
			return false
		}
	}
	return true
}

// Passable reports whether a unit could stand at c: in bounds, walkable
// terrain, nobody there. Used by pathing; occupied cells are obstacles.
func (g *Grid) Passable(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	cell := g.cells[g.index(c)]
	return cell.Terrain.Walkable() && cell.Occupant == NoEntity
}

// Neighbors returns the step destinations reachable from c in one move,
// honoring the adjacency mode and the no-corner-cutting rule. Only cells
// that are in bounds are returned; occupancy is not checked here.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range cardinalDeltas {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	if g.Adjacency == Adjacency8 {
		for _, d := range diagonalDeltas {
			n := c.Add(d[0], d[1])
			if g.InBounds(n) && g.stepLegal(c, n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// UnitCount returns the number of placed entities.
func (g *Grid) UnitCount() int {
	return len(g.units)
}

// Clone returns a deep copy of the grid, including occupancy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	units := make(map[EntityID]Coord, len(g.units))
	for id, c := range g.units {
		units[id] = c
	}
	return &Grid{
		W:         g.W,
		H:         g.H,
		Adjacency: g.Adjacency,
		cells:     cells,
		units:     units,
		nextID:    g.nextID,
	}
}
