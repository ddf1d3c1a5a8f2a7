package core

import "testing"

func TestTileCoverFull(t *testing.T) {
	// Wall directly north of (2,2).
	g := newTestGrid(5, 5, C(2, 1))
	cv := TileCover(g, C(2, 2))

	if cv[SideNorth] != CoverFull {
		t.Errorf("north cover = %v, want full", cv[SideNorth])
	}
	if cv[SideSouth] != CoverNone || cv[SideEast] != CoverNone || cv[SideWest] != CoverNone {
		t.Errorf("unexpected cover on open sides: %v", cv)
	}
}

func TestTileCoverHalf(t *testing.T) {
	// Wall on the north-east diagonal of (2,2): half cover north and east.
	g := newTestGrid(5, 5, C(3, 1))
	cv := TileCover(g, C(2, 2))

	if cv[SideNorth] != CoverHalf {
		t.Errorf("north cover = %v, want half", cv[SideNorth])
	}
	if cv[SideEast] != CoverHalf {
		t.Errorf("east cover = %v, want half", cv[SideEast])
	}
}

func TestTileCoverMapEdge(t *testing.T) {
	// The map edge counts as full cover on that side.
	g := NewOpenGrid(5, 5)
	cv := TileCover(g, C(0, 2))

	if cv[SideWest] != CoverFull {
		t.Errorf("west cover at map edge = %v, want full", cv[SideWest])
	}
}

func TestCoverAgainst(t *testing.T) {
	// Target at (3,2) with a wall west of it; shooter due west is denied,
	// a shooter due south flanks.
	g := newTestGrid(7, 7, C(2, 2))

	if cv := CoverAgainst(g, C(0, 2), C(3, 2)); cv != CoverFull {
		t.Errorf("frontal cover = %v, want full", cv)
	}
	if cv := CoverAgainst(g, C(3, 6), C(3, 2)); cv != CoverNone {
		t.Errorf("flanking cover = %v, want none", cv)
	}
}

func TestCoverLabel(t *testing.T) {
	g := newTestGrid(5, 5, C(2, 1))
	if got := CoverLabel(TileCover(g, C(2, 2))); got != "N:F" {
		t.Errorf("label = %q, want \"N:F\"", got)
	}
	if got := CoverLabel(TileCover(NewOpenGrid(5, 5), C(2, 2))); got != "None" {
		t.Errorf("label = %q, want \"None\"", got)
	}
}
