package core

import "testing"

func TestTilesInRadius(t *testing.T) {
	tiles := TilesInRadius(C(2, 2), 1)
	if len(tiles) != 9 {
		t.Fatalf("radius-1 square = %d tiles, want 9", len(tiles))
	}
	for _, c := range tiles {
		if c.Chebyshev(C(2, 2)) > 1 {
			t.Errorf("tile %v outside Chebyshev radius 1", c)
		}
	}
}

func TestVisibleSetOpenField(t *testing.T) {
	g := NewOpenGrid(9, 9)
	vis := VisibleSet(g, C(4, 4), 2)

	// All 25 tiles of the radius-2 square are in bounds and visible.
	if len(vis) != 25 {
		t.Errorf("visible tiles = %d, want 25", len(vis))
	}
}

func TestVisibleSetBlockedByWall(t *testing.T) {
	// Wall east of the origin hides what lies behind it.
	g := newTestGrid(9, 9, C(5, 4))
	vis := VisibleSet(g, C(4, 4), 3)

	if !vis[C(5, 4)] {
		t.Error("the wall itself should be visible")
	}
	if vis[C(6, 4)] {
		t.Error("tile behind the wall should be hidden")
	}
	if vis[C(7, 4)] {
		t.Error("far tile behind the wall should be hidden")
	}
}

func TestFogAccumulatesExplored(t *testing.T) {
	g := NewOpenGrid(12, 12)
	f := NewFog(2, true)

	f.Recompute(g, C(2, 2))
	if !f.Visible(C(3, 2)) || !f.Explored(C(3, 2)) {
		t.Error("nearby tile should be visible and explored")
	}
	if f.Visible(C(9, 9)) {
		t.Error("distant tile should not be visible")
	}

	f.Recompute(g, C(9, 9))
	if f.Visible(C(3, 2)) {
		t.Error("old position should no longer be visible")
	}
	if !f.Explored(C(3, 2)) {
		t.Error("explored tiles must stay explored")
	}
}

func TestFogDisabled(t *testing.T) {
	f := NewFog(2, false)
	if !f.Visible(C(50, 50)) || !f.Explored(C(50, 50)) {
		t.Error("disabled fog should reveal everything")
	}
}
