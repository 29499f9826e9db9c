package engine

// CountFreeSpots counts the unoccupied cells in the grid
func CountFreeSpots(grid [][]Cell) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if !cell.Occupied {
				count++
			}
		}
	}
	return count
}

// CountOccupiedSpots counts the occupied cells in the grid
func CountOccupiedSpots(grid [][]Cell) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell.Occupied {
				count++
			}
		}
	}
	return count
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// RenderLot produces a text rendering of the lot, one string per row.
// Precedence per cell: goal, reserved, path highlight, occupied, free; the
// two entrances overlay whatever the cell would otherwise show.
func RenderLot(ls *LotState) []string {
	rows := make([]string, len(ls.Grid))
	for r := range ls.Grid {
		line := make([]byte, len(ls.Grid[r]))
		for c, cell := range ls.Grid[r] {
			ch := byte('.')
			switch {
			case cell.Goal:
				ch = 'G'
			case cell.Reserved:
				ch = 'R'
			case cell.Highlighted:
				ch = '*'
			case cell.Occupied:
				ch = 'X'
			}
			line[c] = ch
		}
		rows[r] = string(line)
	}

	overlay := func(p Position, ch byte) {
		if p.Row >= 0 && p.Row < len(rows) && p.Col >= 0 && p.Col < len(rows[p.Row]) {
			b := []byte(rows[p.Row])
			b[p.Col] = ch
			rows[p.Row] = string(b)
		}
	}
	overlay(ls.VehicleEntrance, 'E')
	overlay(ls.PedestrianEntrance, 'P')

	return rows
}
