package core

import "fmt"

// Kind tags what a unit is. Grid validation is kind-agnostic; the tag only
// matters to the battle layer (targeting, AI, rendering).
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Unit is a placed actor with a position on the grid. It holds a non-owning
// reference to its grid and never mutates grid state directly: every
// position change flows through the grid's move protocol, and the grid
// itself records only the unit's EntityID, never the Unit value.
//
// A unit has two logical states: Placed (after a successful NewUnit) and
// Removed (after Remove, terminal). Moves are only legal while Placed.
type Unit struct {
	id     EntityID
	kind   Kind
	grid   *Grid
	pos    Coord
	placed bool

	MaxHP  int
	HP     int
	Aim    int // additive aim modifier on top of the battle's base aim
	Weapon *Weapon
	AP     int // action points remaining this round
}

// NewUnit creates a unit and places it on the grid at c. Placement failures
// (ErrOutOfBounds, ErrBlocked, ErrOccupied) come from Grid.PlaceEntity
// unchanged and leave the grid untouched.
func NewUnit(g *Grid, kind Kind, c Coord, hp int, w *Weapon) (*Unit, error) {
	id := g.AllocID()
	if err := g.PlaceEntity(id, c); err != nil {
		return nil, err
	}
	return &Unit{
		id:     id,
		kind:   kind,
		grid:   g,
		pos:    c,
		placed: true,
		MaxHP:  hp,
		HP:     hp,
		Weapon: w,
	}, nil
}

// ID returns the unit's grid handle.
func (u *Unit) ID() EntityID {
	return u.id
}

// Kind returns the unit's kind tag.
func (u *Unit) Kind() Kind {
	return u.kind
}

// Position returns the unit's current coordinate. Pure read.
func (u *Unit) Position() Coord {
	return u.pos
}

// Placed reports whether the unit is still on the grid.
func (u *Unit) Placed() bool {
	return u.placed
}

// MoveTo asks the grid to move the unit one step to c. On success the stored
// coordinate is updated; on failure it is unchanged and the grid's error is
// surfaced as-is, preserving the precise failure kind for the caller.
func (u *Unit) MoveTo(c Coord) error {
	if !u.placed {
		return fmt.Errorf("move removed unit %d: %w", u.id, ErrNotOccupant)
	}
	if err := u.grid.MoveEntity(u.id, u.pos, c); err != nil {
		return err
	}
	u.pos = c
	return nil
}

// Remove takes the unit off the grid. Terminal: a removed unit cannot move
// or be placed again.
func (u *Unit) Remove() error {
	if !u.placed {
		return fmt.Errorf("remove unit %d: %w", u.id, ErrNotOccupant)
	}
	if err := u.grid.RemoveEntity(u.id); err != nil {
		return err
	}
	u.placed = false
	return nil
}

// Alive reports whether the unit has hit points left.
func (u *Unit) Alive() bool {
	return u.HP > 0
}

// ApplyDamage subtracts damage, clamping at zero. Negative input is ignored.
func (u *Unit) ApplyDamage(dmg int) {
	if dmg < 0 {
		dmg = 0
	}
	u.HP -= dmg
	if u.HP < 0 {
		u.HP = 0
	}
}
