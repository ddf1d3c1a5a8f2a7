package core

import (
	"errors"
	"testing"
)

func TestCreateRoundTrip(t *testing.T) {
	// Scenario: 5x5 all-walkable grid, unit created at (2,2).
	g := NewOpenGrid(5, 5)

	u, err := NewUnit(g, KindPlayer, C(2, 2), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !u.Position().Equal(C(2, 2)) {
		t.Errorf("position = %v, want (2,2)", u.Position())
	}
	if occ, _ := g.IsOccupied(C(2, 2)); !occ {
		t.Error("spawn cell should be occupied after create")
	}
}

func TestMoveToAdjacent(t *testing.T) {
	g := NewOpenGrid(5, 5)
	u, err := NewUnit(g, KindPlayer, C(2, 2), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	if err := u.MoveTo(C(2, 3)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if !u.Position().Equal(C(2, 3)) {
		t.Errorf("position = %v, want (2,3)", u.Position())
	}
	if occ, _ := g.IsOccupied(C(2, 2)); occ {
		t.Error("old cell should be free")
	}
	if occ, _ := g.IsOccupied(C(2, 3)); !occ {
		t.Error("new cell should be occupied")
	}
}

func TestMoveToBlocked(t *testing.T) {
	// Scenario: wall at (3,3), move into it from an adjacent cell.
	g := newTestGrid(5, 5, C(3, 3))
	u, err := NewUnit(g, KindPlayer, C(3, 2), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	if err := u.MoveTo(C(3, 3)); !errors.Is(err, ErrBlocked) {
		t.Errorf("expected ErrBlocked, got %v", err)
	}
	if !u.Position().Equal(C(3, 2)) {
		t.Errorf("position changed on failed move: %v", u.Position())
	}
}

func TestSecondUnitOnOccupiedCell(t *testing.T) {
	g := NewOpenGrid(5, 5)
	first, err := NewUnit(g, KindPlayer, C(2, 2), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewUnit(g, KindEnemy, C(2, 2), 6, NewWeapon("assault_rifle")); !errors.Is(err, ErrOccupied) {
		t.Errorf("expected ErrOccupied, got %v", err)
	}

	// First unit unaffected.
	if !first.Position().Equal(C(2, 2)) {
		t.Errorf("first unit moved: %v", first.Position())
	}
	if id, _ := g.OccupantAt(C(2, 2)); id != first.ID() {
		t.Errorf("occupant = %d, want %d", id, first.ID())
	}
}

func TestMoveToOutOfBounds(t *testing.T) {
	g := NewOpenGrid(5, 5)
	u, err := NewUnit(g, KindPlayer, C(0, 0), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	// Out of bounds wins over adjacency: (-1,0) is next to (0,0) but still
	// reports ErrOutOfBounds.
	if err := u.MoveTo(C(-1, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := u.MoveTo(C(40, 40)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if !u.Position().Equal(C(0, 0)) {
		t.Errorf("position changed on failed move: %v", u.Position())
	}
}

func TestRemoveIsTerminal(t *testing.T) {
	g := NewOpenGrid(5, 5)
	u, err := NewUnit(g, KindPlayer, C(1, 1), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	if err := u.Remove(); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if u.Placed() {
		t.Error("unit should report removed")
	}
	if occ, _ := g.IsOccupied(C(1, 1)); occ {
		t.Error("cell should be clear after remove")
	}
	if err := u.MoveTo(C(1, 2)); !errors.Is(err, ErrNotOccupant) {
		t.Errorf("moving a removed unit should fail with ErrNotOccupant, got %v", err)
	}
	if err := u.Remove(); !errors.Is(err, ErrNotOccupant) {
		t.Errorf("second remove should fail with ErrNotOccupant, got %v", err)
	}
}

func TestOccupancyInvariantAfterMoves(t *testing.T) {
	g := newTestGrid(6, 6, C(3, 3), C(4, 1))
	u, err := NewUnit(g, KindPlayer, C(0, 0), 10, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	moves := []Coord{C(1, 0), C(2, 0), C(2, 1), C(2, 2), C(1, 2), C(1, 3)}
	for _, m := range moves {
		if err := u.MoveTo(m); err != nil {
			t.Fatalf("move to %v failed: %v", m, err)
		}

		// Exactly one cell holds the unit, and it matches Position().
		count := 0
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				id, _ := g.OccupantAt(C(x, y))
				if id == u.ID() {
					count++
					if !C(x, y).Equal(u.Position()) {
						t.Fatalf("cell (%d,%d) holds unit but Position() = %v", x, y, u.Position())
					}
				}
			}
		}
		if count != 1 {
			t.Fatalf("unit occupies %d cells after move to %v, want 1", count, m)
		}
	}
}

func TestApplyDamage(t *testing.T) {
	g := NewOpenGrid(3, 3)
	u, err := NewUnit(g, KindEnemy, C(1, 1), 6, NewWeapon("assault_rifle"))
	if err != nil {
		t.Fatal(err)
	}

	u.ApplyDamage(4)
	if u.HP != 2 || !u.Alive() {
		t.Errorf("hp = %d alive = %v, want 2 true", u.HP, u.Alive())
	}
	u.ApplyDamage(-5)
	if u.HP != 2 {
		t.Errorf("negative damage should be ignored, hp = %d", u.HP)
	}
	u.ApplyDamage(10)
	if u.HP != 0 || u.Alive() {
		t.Errorf("hp should clamp at 0, got %d alive=%v", u.HP, u.Alive())
	}
}
