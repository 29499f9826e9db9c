package engine

// directions is the fixed neighbor-enumeration order for every search in this
// package: up, down, left, right. SpotLocator tie-breaking depends on it.
var directions = []struct{ dr, dc int }{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

// PathOptions tunes goal and traversal acceptance for FindPath.
type PathOptions struct {
	// AvoidOccupied refuses to traverse occupied cells instead of only
	// rejecting them as the goal. The default (false) matches the observed
	// lot behavior: vehicles route over occupied spots freely and only the
	// destination must be free.
	AvoidOccupied bool
}

// pathNode pairs a coordinate with the ordered cells visited to reach it from
// the search origin, exclusive of the coordinate itself.
type pathNode struct {
	pos  Position
	path []Position
}

// FindPath runs a breadth-first search over the 4-connected grid from start
// to goal. Traversal crosses any in-bounds cell regardless of occupancy
// (unless opts.AvoidOccupied is set), but the search only terminates
// successfully when the goal cell is unoccupied at query time.
//
// On success the returned path runs from start (exclusive) to goal
// (inclusive); start == goal on a free cell yields the single-element path
// [goal]. An occupied goal always fails with ErrNoPathFound, even when it is
// geometrically reachable.
func FindPath(ls *LotState, start, goal Position, opts PathOptions) ([]Position, error) {
	if !ls.InBounds(start) || !ls.InBounds(goal) {
		return nil, ErrInvalidCoordinate
	}

	queue := []pathNode{{pos: start}}
	visited := make(map[Position]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// The queue may hold a coordinate several times before its first
		// dequeue; expand each coordinate at most once.
		if visited[cur.pos] {
			continue
		}
		visited[cur.pos] = true

		if cur.pos == goal && !ls.CellAt(goal).Occupied {
			route := append(append([]Position{}, cur.path...), goal)
			if len(route) > 1 {
				route = route[1:] // drop the start cell; callers highlight from the first step
			}
			return route, nil
		}

		for _, d := range directions {
			next := Position{Row: cur.pos.Row + d.dr, Col: cur.pos.Col + d.dc}
			if !ls.InBounds(next) || visited[next] {
				continue
			}
			if opts.AvoidOccupied && next != goal && ls.CellAt(next).Occupied {
				continue
			}
			// Each enqueued node's path is its predecessor's path extended
			// by the predecessor's own coordinate.
			nextPath := make([]Position, 0, len(cur.path)+1)
			nextPath = append(nextPath, cur.path...)
			nextPath = append(nextPath, cur.pos)
			queue = append(queue, pathNode{pos: next, path: nextPath})
		}
	}

	return nil, ErrNoPathFound
}
