package core

// FloodResult holds the outcome of a breadth-first flood fill: step costs
// for every reachable tile and parent links for path reconstruction.
type FloodResult struct {
	Start   Coord
	Costs   map[Coord]int
	parents map[Coord]Coord
}

// FloodFill runs a BFS from start over passable cells, cost 1 per step,
// capped at maxCost. The neighborhood follows the grid's adjacency mode.
// The start tile itself is always included at cost 0 (the mover stands
// there), all other occupied cells are obstacles.
func FloodFill(g *Grid, start Coord, maxCost int) FloodResult {
	res := FloodResult{
		Start:   start,
		Costs:   map[Coord]int{start: 0},
		parents: make(map[Coord]Coord),
	}

	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		base := res.Costs[cur]
		if base >= maxCost {
			continue
		}
		for _, n := range g.Neighbors(cur) {
			if !g.Passable(n) {
				continue
			}
			if _, seen := res.Costs[n]; seen {
				continue
			}
			res.Costs[n] = base + 1
			res.parents[n] = cur
			queue = append(queue, n)
		}
	}
	return res
}

// Reachable reports whether end was reached by the fill.
func (f FloodResult) Reachable(end Coord) bool {
	_, ok := f.Costs[end]
	return ok
}

// PathTo walks the parent links back to the start and returns the tiles
// [start .. end]. Returns nil when end was not reached.
func (f FloodResult) PathTo(end Coord) []Coord {
	if !f.Reachable(end) {
		return nil
	}
	var path []Coord
	cur := end
	for {
		path = append(path, cur)
		parent, ok := f.parents[cur]
		if !ok {
			break
		}
		cur = parent
	}
	// Reverse in place: parents were walked end-to-start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NextStepToward returns the first step of the cheapest path from start
// toward goal, searching adjacent-to-goal tiles when the goal itself is
// occupied. Returns false when nothing is reachable within maxCost.
func NextStepToward(g *Grid, start, goal Coord, maxCost int) (Coord, bool) {
	fill := FloodFill(g, start, maxCost)

	best := goal
	bestCost := -1
	if cost, ok := fill.Costs[goal]; ok && !goal.Equal(start) {
		best, bestCost = goal, cost
	} else {
		// Goal is blocked or occupied: aim for its cheapest reachable neighbor.
		for _, n := range g.Neighbors(goal) {
			if cost, ok := fill.Costs[n]; ok && !n.Equal(start) {
				if bestCost == -1 || cost < bestCost {
					best, bestCost = n, cost
				}
			}
		}
	}
	if bestCost == -1 {
		return Coord{}, false
	}
	path := fill.PathTo(best)
	if len(path) < 2 {
		return Coord{}, false
	}
	return path[1], true
}
