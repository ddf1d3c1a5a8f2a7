package core

import (
	"errors"
	"testing"
)

// newTestGrid builds a grid with the given wall tiles.
func newTestGrid(w, h int, walls ...Coord) *Grid {
	terrain := make(map[Coord]Terrain)
	for _, c := range walls {
		terrain[c] = TerrainWall
	}
	return NewGrid(w, h, terrain)
}

func TestInBounds(t *testing.T) {
	g := NewOpenGrid(5, 5)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !g.InBounds(C(x, y)) {
				t.Errorf("expected (%d,%d) in bounds", x, y)
			}
		}
	}

	outside := []Coord{C(-1, 0), C(0, -1), C(5, 0), C(0, 5), C(-1, -1), C(5, 5), C(100, 2)}
	for _, c := range outside {
		if g.InBounds(c) {
			t.Errorf("expected %v out of bounds", c)
		}
	}
}

func TestWalkableAndOccupiedQueries(t *testing.T) {
	g := newTestGrid(5, 5, C(3, 3))

	if w, err := g.IsWalkable(C(2, 2)); err != nil || !w {
		t.Errorf("expected (2,2) walkable, got %v, %v", w, err)
	}
	if w, err := g.IsWalkable(C(3, 3)); err != nil || w {
		t.Errorf("expected (3,3) not walkable, got %v, %v", w, err)
	}
	if _, err := g.IsWalkable(C(9, 9)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.IsOccupied(C(-1, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	// Query idempotence: repeated reads without mutation agree.
	for i := 0; i < 3; i++ {
		if w, _ := g.IsWalkable(C(3, 3)); w {
			t.Fatal("walkable result changed without mutation")
		}
		if occ, _ := g.IsOccupied(C(2, 2)); occ {
			t.Fatal("occupied result changed without mutation")
		}
	}
}

func TestPlaceEntity(t *testing.T) {
	g := newTestGrid(5, 5, C(3, 3))
	id := g.AllocID()

	if err := g.PlaceEntity(id, C(2, 2)); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if occ, _ := g.IsOccupied(C(2, 2)); !occ {
		t.Error("cell should be occupied after place")
	}
	if pos, ok := g.PositionOf(id); !ok || !pos.Equal(C(2, 2)) {
		t.Errorf("registry position = %v, %v; want (2,2)", pos, ok)
	}

	if err := g.PlaceEntity(g.AllocID(), C(7, 7)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := g.PlaceEntity(g.AllocID(), C(3, 3)); !errors.Is(err, ErrBlocked) {
		t.Errorf("expected ErrBlocked, got %v", err)
	}
	if err := g.PlaceEntity(g.AllocID(), C(2, 2)); !errors.Is(err, ErrOccupied) {
		t.Errorf("expected ErrOccupied, got %v", err)
	}
	if err := g.PlaceEntity(id, C(1, 1)); !errors.Is(err, ErrAlreadyPlaced) {
		t.Errorf("expected ErrAlreadyPlaced, got %v", err)
	}
}

func TestMoveEntity(t *testing.T) {
	g := NewOpenGrid(5, 5)
	id := g.AllocID()
	if err := g.PlaceEntity(id, C(2, 2)); err != nil {
		t.Fatal(err)
	}

	if err := g.MoveEntity(id, C(2, 2), C(2, 3)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if occ, _ := g.IsOccupied(C(2, 2)); occ {
		t.Error("source cell should be clear after move")
	}
	if occ, _ := g.IsOccupied(C(2, 3)); !occ {
		t.Error("destination cell should be occupied after move")
	}
	if pos, _ := g.PositionOf(id); !pos.Equal(C(2, 3)) {
		t.Errorf("registry position = %v; want (2,3)", pos)
	}
}

func TestMoveEntityErrors(t *testing.T) {
	g := newTestGrid(5, 5, C(3, 3))
	id := g.AllocID()
	other := g.AllocID()
	if err := g.PlaceEntity(id, C(2, 3)); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceEntity(other, C(2, 4)); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		from Coord
		to   Coord
		want error
	}{
		{"oob destination", C(2, 3), C(-1, 3), ErrOutOfBounds},
		{"oob source", C(-1, 0), C(0, 0), ErrOutOfBounds},
		{"not occupant", C(1, 1), C(1, 2), ErrNotOccupant},
		{"blocked destination", C(2, 3), C(3, 3), ErrBlocked},
		{"occupied destination", C(2, 3), C(2, 4), ErrOccupied},
		{"too far", C(2, 3), C(2, 1), ErrNotAdjacent},
		{"diagonal under 4-way", C(2, 3), C(1, 2), ErrNotAdjacent},
		{"move in place", C(2, 3), C(2, 3), ErrNotAdjacent},
	}
	for _, tc := range cases {
		if err := g.MoveEntity(id, tc.from, tc.to); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
		// Failure non-mutation: both units still where they were.
		if pos, _ := g.PositionOf(id); !pos.Equal(C(2, 3)) {
			t.Fatalf("%s: mover shifted to %v on failed move", tc.name, pos)
		}
		if pos, _ := g.PositionOf(other); !pos.Equal(C(2, 4)) {
			t.Fatalf("%s: bystander shifted to %v", tc.name, pos)
		}
		if occ, _ := g.IsOccupied(C(2, 3)); !occ {
			t.Fatalf("%s: source cell lost its occupant on failed move", tc.name)
		}
	}
}

func TestMoveEntityDiagonal(t *testing.T) {
	g := NewOpenGrid(5, 5)
	g.Adjacency = Adjacency8
	id := g.AllocID()
	if err := g.PlaceEntity(id, C(2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := g.MoveEntity(id, C(2, 2), C(3, 3)); err != nil {
		t.Errorf("diagonal move under 8-way should succeed, got %v", err)
	}
}

func TestDiagonalCornerCutting(t *testing.T) {
	// Walls at (3,2) and (2,3) pinch the diagonal from (2,2) to (3,3).
	g := newTestGrid(5, 5, C(3, 2), C(2, 3))
	g.Adjacency = Adjacency8
	id := g.AllocID()
	if err := g.PlaceEntity(id, C(2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := g.MoveEntity(id, C(2, 2), C(3, 3)); !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("pinched diagonal should fail with ErrNotAdjacent, got %v", err)
	}
}

func TestRemoveEntity(t *testing.T) {
	g := NewOpenGrid(5, 5)
	id := g.AllocID()
	if err := g.PlaceEntity(id, C(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := g.RemoveEntity(id); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if occ, _ := g.IsOccupied(C(1, 1)); occ {
		t.Error("cell should be clear after remove")
	}
	if _, ok := g.PositionOf(id); ok {
		t.Error("registry should forget removed entity")
	}
	if err := g.RemoveEntity(id); !errors.Is(err, ErrNotOccupant) {
		t.Errorf("second remove should fail with ErrNotOccupant, got %v", err)
	}
}

func TestNeighbors(t *testing.T) {
	g := NewOpenGrid(3, 3)

	if n := len(g.Neighbors(C(1, 1))); n != 4 {
		t.Errorf("center neighbors under 4-way = %d, want 4", n)
	}
	if n := len(g.Neighbors(C(0, 0))); n != 2 {
		t.Errorf("corner neighbors under 4-way = %d, want 2", n)
	}

	g.Adjacency = Adjacency8
	if n := len(g.Neighbors(C(1, 1))); n != 8 {
		t.Errorf("center neighbors under 8-way = %d, want 8", n)
	}
	if n := len(g.Neighbors(C(0, 0))); n != 3 {
		t.Errorf("corner neighbors under 8-way = %d, want 3", n)
	}
}

func TestClone(t *testing.T) {
	g := newTestGrid(4, 4, C(1, 1))
	id := g.AllocID()
	if err := g.PlaceEntity(id, C(0, 0)); err != nil {
		t.Fatal(err)
	}

	clone := g.Clone()
	if err := clone.MoveEntity(id, C(0, 0), C(0, 1)); err != nil {
		t.Fatal(err)
	}

	if pos, _ := g.PositionOf(id); !pos.Equal(C(0, 0)) {
		t.Error("mutating a clone must not touch the original")
	}
	if pos, _ := clone.PositionOf(id); !pos.Equal(C(0, 1)) {
		t.Error("clone should carry its own occupancy")
	}
}
