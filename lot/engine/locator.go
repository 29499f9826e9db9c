package engine

// FindNearestFreeSpot runs the same breadth-first shell as FindPath from the
// pedestrian entrance, accepting the first dequeued coordinate whose cell is
// unoccupied. BFS layer order is the proximity metric, with ties broken by
// the fixed up/down/left/right enumeration, so results are deterministic.
//
// The returned traversal records the cells visited from the pedestrian
// entrance up to but excluding the spot itself; if the entrance is free it is
// returned immediately with an empty traversal. When no
// free cell exists anywhere in the grid the search fails with ErrLotFull.
func FindNearestFreeSpot(ls *LotState) (Position, []Position, error) {
	origin := ls.PedestrianEntrance
	if !ls.InBounds(origin) {
		return Position{}, nil, ErrInvalidCoordinate
	}

	queue := []pathNode{{pos: origin}}
	visited := make(map[Position]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.pos] {
			continue
		}
		visited[cur.pos] = true

		if !ls.CellAt(cur.pos).Occupied {
			return cur.pos, cur.path, nil
		}

		for _, d := range directions {
			next := Position{Row: cur.pos.Row + d.dr, Col: cur.pos.Col + d.dc}
			if !ls.InBounds(next) || visited[next] {
				continue
			}
			nextPath := make([]Position, 0, len(cur.path)+1)
			nextPath = append(nextPath, cur.path...)
			nextPath = append(nextPath, cur.pos)
			queue = append(queue, pathNode{pos: next, path: nextPath})
		}
	}

	return Position{}, nil, ErrLotFull
}
