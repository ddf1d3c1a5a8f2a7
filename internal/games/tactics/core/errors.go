package core

import "errors"

// Move legality errors. The grid is the sole arbiter of these; callers test
// with errors.Is and the unit layer passes them through untranslated.
// None of them is transient: retrying the same call yields the same result.
var (
	// ErrOutOfBounds means a coordinate lies outside the grid dimensions.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrBlocked means the destination terrain disallows entry.
	ErrBlocked = errors.New("cell blocked")

	// ErrOccupied means another entity already occupies the cell.
	ErrOccupied = errors.New("cell occupied")

	// ErrNotOccupant means the entity is not the recorded occupant of the
	// claimed source cell. This indicates desynchronized state or misuse of
	// the API, never normal gameplay.
	ErrNotOccupant = errors.New("not the occupant")

	// ErrNotAdjacent means the destination is not a legal single-step
	// neighbor of the source under the grid's adjacency mode.
	ErrNotAdjacent = errors.New("destination not adjacent")

	// ErrAlreadyPlaced means the entity handle is already registered on the
	// grid and cannot be placed a second time.
	ErrAlreadyPlaced = errors.New("entity already placed")

	// ErrNoActionPoints means the acting unit has no action points left
	// this round.
	ErrNoActionPoints = errors.New("no action points")

	// ErrNoAmmo means the weapon magazine is empty.
	ErrNoAmmo = errors.New("weapon magazine empty")

	// ErrNoPath means no walkable route exists within the move budget.
	ErrNoPath = errors.New("no path to destination")

	// ErrNoLineOfFire means the target cannot be shot at from here.
	ErrNoLineOfFire = errors.New("no line of fire")
)
