package core

import "testing"

func TestFloodFillCosts(t *testing.T) {
	g := NewOpenGrid(5, 5)
	fill := FloodFill(g, C(2, 2), 2)

	if cost := fill.Costs[C(2, 2)]; cost != 0 {
		t.Errorf("start cost = %d, want 0", cost)
	}
	if cost := fill.Costs[C(2, 0)]; cost != 2 {
		t.Errorf("cost to (2,0) = %d, want 2", cost)
	}
	// Manhattan distance 3 is past the cap under 4-way stepping.
	if fill.Reachable(C(4, 3)) {
		t.Error("(4,3) should be beyond a budget of 2")
	}
	// Every reported cost respects the cap and the metric.
	for c, cost := range fill.Costs {
		if cost > 2 {
			t.Errorf("cost %d at %v exceeds cap", cost, c)
		}
		if cost < c.Manhattan(C(2, 2)) {
			t.Errorf("cost %d at %v beats the Manhattan lower bound", cost, c)
		}
	}
}

func TestFloodFillRespectsWallsAndUnits(t *testing.T) {
	// A wall column with a gap forces a detour; an occupied tile is an
	// obstacle too.
	g := newTestGrid(5, 5, C(2, 0), C(2, 1), C(2, 3), C(2, 4))
	blocker := g.AllocID()
	if err := g.PlaceEntity(blocker, C(2, 2)); err != nil {
		t.Fatal(err)
	}

	fill := FloodFill(g, C(0, 2), 10)
	if fill.Reachable(C(4, 2)) {
		t.Error("the only gap is occupied; far side should be unreachable")
	}

	if err := g.RemoveEntity(blocker); err != nil {
		t.Fatal(err)
	}
	fill = FloodFill(g, C(0, 2), 10)
	if !fill.Reachable(C(4, 2)) {
		t.Error("clearing the gap should open the far side")
	}
}

func TestPathReconstruction(t *testing.T) {
	g := newTestGrid(5, 5, C(1, 1), C(1, 2), C(1, 3))
	fill := FloodFill(g, C(0, 2), 10)

	path := fill.PathTo(C(2, 2))
	if path == nil {
		t.Fatal("expected a path around the wall")
	}
	if !path[0].Equal(C(0, 2)) || !path[len(path)-1].Equal(C(2, 2)) {
		t.Errorf("path endpoints wrong: %v .. %v", path[0], path[len(path)-1])
	}
	if len(path)-1 != fill.Costs[C(2, 2)] {
		t.Errorf("path length %d disagrees with cost %d", len(path)-1, fill.Costs[C(2, 2)])
	}
	// Consecutive path tiles are grid steps.
	for i := 1; i < len(path); i++ {
		if path[i-1].Chebyshev(path[i]) != 1 {
			t.Errorf("path jump %v -> %v", path[i-1], path[i])
		}
	}

	if p := fill.PathTo(C(4, 4)); p != nil && fill.Costs[C(4, 4)] > 10 {
		t.Error("path past the cost cap should be nil")
	}
	if p := fill.PathTo(C(1, 1)); p != nil {
		t.Error("path into a wall should be nil")
	}
}

func TestNextStepToward(t *testing.T) {
	g := NewOpenGrid(5, 5)
	target := g.AllocID()
	if err := g.PlaceEntity(target, C(4, 2)); err != nil {
		t.Fatal(err)
	}

	// The goal tile is occupied; the step should aim at its neighborhood.
	step, ok := NextStepToward(g, C(0, 2), C(4, 2), 10)
	if !ok {
		t.Fatal("expected a step toward the target")
	}
	if !step.Equal(C(1, 2)) {
		t.Errorf("step = %v, want (1,2)", step)
	}

	// Fully walled-off goal: no step.
	g2 := newTestGrid(5, 5, C(3, 1), C(3, 2), C(3, 3), C(4, 1), C(4, 3))
	if _, ok := NextStepToward(g2, C(0, 2), C(4, 2), 10); ok {
		t.Error("unreachable goal should produce no step")
	}
}
