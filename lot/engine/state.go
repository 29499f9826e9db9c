package engine

import "time"

// InBounds reports whether the position lies inside the lot grid.
func (ls *LotState) InBounds(p Position) bool {
	if p.Row < 0 || p.Row >= len(ls.Grid) {
		return false
	}
	if p.Col < 0 || p.Col >= len(ls.Grid[0]) {
		return false
	}
	return true
}

// CellAt returns a copy of the cell at p. Callers must bounds-check first.
func (ls *LotState) CellAt(p Position) Cell {
	return ls.Grid[p.Row][p.Col]
}

// SetHighlighted marks highlighted true exactly for cells whose coordinate
// appears in path, false everywhere else. Occupied and reserved flags are
// untouched.
func (ls *LotState) SetHighlighted(path []Position) {
	for r := range ls.Grid {
		for c := range ls.Grid[r] {
			ls.Grid[r][c].Highlighted = false
		}
	}
	for _, p := range path {
		if ls.InBounds(p) {
			ls.Grid[p.Row][p.Col].Highlighted = true
		}
	}
}

// SetGoal marks goal true exactly at p, false everywhere else.
func (ls *LotState) SetGoal(p Position) {
	for r := range ls.Grid {
		for c := range ls.Grid[r] {
			ls.Grid[r][c].Goal = false
		}
	}
	if ls.InBounds(p) {
		ls.Grid[p.Row][p.Col].Goal = true
	}
}

// TrySetReserved attempts to reserve the spot at p. It succeeds only when the
// cell is unoccupied and not already reserved; on success any prior
// reservation is cleared, the cell is marked reserved and highlighted for
// immediate visual feedback, and p becomes the active reservation target.
// Re-reserving the currently held spot is a trivial success with no state
// change. On failure the grid is left untouched.
func (ls *LotState) TrySetReserved(p Position) bool {
	if !ls.InBounds(p) {
		return false
	}
	if ls.ReservationHeld && ls.ReservedSpot == p {
		return true
	}

	cell := &ls.Grid[p.Row][p.Col]
	if cell.Occupied || cell.Reserved {
		return false
	}

	if ls.ReservationHeld {
		ls.Grid[ls.ReservedSpot.Row][ls.ReservedSpot.Col].Reserved = false
	}

	cell.Reserved = true
	cell.Highlighted = true
	ls.ReservationHeld = true
	ls.ReservedSpot = p
	return true
}

// AddActionToHistory appends a controller action to the lot's action history
func (ls *LotState) AddActionToHistory(action string, target *Position, outcome string, pathLength int, success bool) {
	entry := ActionHistoryEntry{
		Action:       action,
		Target:       target,
		Outcome:      outcome,
		PathLength:   pathLength,
		Timestamp:    time.Now().Unix(),
		Success:      success,
		ActionNumber: ls.TotalActions + 1,
	}
	// Append to cumulative history (never cleared by reset) and increment total
	ls.ActionHistory = append(ls.ActionHistory, entry)
	ls.TotalActions++

	// Append to current segment history and increment its counter
	ls.CurrentActions = append(ls.CurrentActions, entry)
	ls.CurrentActionsCount++
}
