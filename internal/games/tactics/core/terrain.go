package core

// Terrain is the fixed kind of a grid cell. It is set at grid creation and
// never mutated afterwards; only occupancy changes during a battle.
type Terrain uint8

const (
	// TerrainGround is walkable floor.
	TerrainGround Terrain = iota
	// TerrainWall blocks movement and line of sight.
	TerrainWall
)

// Walkable returns true if units may enter this terrain.
func (t Terrain) Walkable() bool {
	return t == TerrainGround
}

// Rune returns the map display character for the terrain.
func (t Terrain) Rune() rune {
	switch t {
	case TerrainWall:
		return '#'
	default:
		return '.'
	}
}

// EntityID is a handle into the grid's occupancy registry.
// The zero value means "no occupant".
type EntityID int

// NoEntity is the empty occupant handle.
const NoEntity EntityID = 0

// Cell is a single addressable location on the grid: fixed terrain plus an
// optional occupant handle.
type Cell struct {
	Terrain  Terrain
	Occupant EntityID
}
