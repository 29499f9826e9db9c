package engine

import "testing"

func TestSetHighlighted_ExactCells(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	path := []Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}

	ls.SetHighlighted(path)

	want := map[Position]bool{}
	for _, p := range path {
		want[p] = true
	}
	for r := range ls.Grid {
		for c := range ls.Grid[r] {
			p := Position{Row: r, Col: c}
			if ls.Grid[r][c].Highlighted != want[p] {
				t.Errorf("cell (%d,%d): highlighted=%v, want %v", r, c, ls.Grid[r][c].Highlighted, want[p])
			}
		}
	}
}

func TestSetHighlighted_ClearsPreviousPath(t *testing.T) {
	ls := emptyLot(t, 4, 10)

	ls.SetHighlighted([]Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}})
	ls.SetHighlighted([]Position{{Row: 3, Col: 3}})

	if ls.Grid[0][1].Highlighted || ls.Grid[0][2].Highlighted {
		t.Error("previous path cells should no longer be highlighted")
	}
	if !ls.Grid[3][3].Highlighted {
		t.Error("new path cell should be highlighted")
	}
}

func TestSetHighlighted_PreservesOtherFlags(t *testing.T) {
	ls := lotFromLayout(t, []string{
		"X...",
		"....",
	})
	if !ls.TrySetReserved(Position{Row: 1, Col: 1}) {
		t.Fatal("setup reservation failed")
	}

	ls.SetHighlighted([]Position{{Row: 0, Col: 1}})

	if !ls.Grid[0][0].Occupied {
		t.Error("occupied flag must not change")
	}
	if !ls.Grid[1][1].Reserved {
		t.Error("reserved flag must not change")
	}
}

func TestSetGoal_ExactCell(t *testing.T) {
	ls := emptyLot(t, 4, 10)

	ls.SetGoal(Position{Row: 1, Col: 4})
	ls.SetGoal(Position{Row: 2, Col: 7})

	for r := range ls.Grid {
		for c := range ls.Grid[r] {
			want := r == 2 && c == 7
			if ls.Grid[r][c].Goal != want {
				t.Errorf("cell (%d,%d): goal=%v, want %v", r, c, ls.Grid[r][c].Goal, want)
			}
		}
	}
}

func TestTrySetReserved_Success(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	p := Position{Row: 2, Col: 5}

	if !ls.TrySetReserved(p) {
		t.Fatal("expected reservation to succeed on a free cell")
	}
	if !ls.Grid[2][5].Reserved {
		t.Error("cell should be reserved")
	}
	if !ls.Grid[2][5].Highlighted {
		t.Error("cell should be highlighted for immediate feedback")
	}
	if !ls.ReservationHeld || ls.ReservedSpot != p {
		t.Errorf("reservation target not recorded: held=%v spot=(%d,%d)",
			ls.ReservationHeld, ls.ReservedSpot.Row, ls.ReservedSpot.Col)
	}
}

func TestTrySetReserved_OccupiedFails(t *testing.T) {
	ls := lotFromLayout(t, []string{
		".XXXXXXXXX",
		"..........",
		"..........",
		"..........",
	})

	if ls.TrySetReserved(Position{Row: 0, Col: 5}) {
		t.Fatal("expected reservation of an occupied cell to fail")
	}
	if ls.ReservationHeld {
		t.Error("no reservation target should be stored after a failure")
	}
	for r := range ls.Grid {
		for c := range ls.Grid[r] {
			if ls.Grid[r][c].Reserved || ls.Grid[r][c].Highlighted {
				t.Errorf("cell (%d,%d) changed after a failed reservation", r, c)
			}
		}
	}
}

func TestTrySetReserved_ReplacesPriorReservation(t *testing.T) {
	ls := emptyLot(t, 4, 10)

	if !ls.TrySetReserved(Position{Row: 3, Col: 0}) {
		t.Fatal("first reservation failed")
	}
	if !ls.TrySetReserved(Position{Row: 1, Col: 1}) {
		t.Fatal("second reservation failed")
	}

	if ls.Grid[3][0].Reserved {
		t.Error("(3,0) should no longer be reserved")
	}
	if !ls.Grid[1][1].Reserved {
		t.Error("(1,1) should be reserved")
	}

	// At-most-one invariant after any sequence of calls.
	count := 0
	for r := range ls.Grid {
		for c := range ls.Grid[r] {
			if ls.Grid[r][c].Reserved {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one reserved cell, got %d", count)
	}
}

func TestTrySetReserved_SameSpotIsIdempotent(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	p := Position{Row: 2, Col: 2}

	if !ls.TrySetReserved(p) {
		t.Fatal("first reservation failed")
	}
	if !ls.TrySetReserved(p) {
		t.Error("re-reserving the held spot should succeed trivially")
	}
	if ls.ReservedSpot != p || !ls.Grid[2][2].Reserved {
		t.Error("reservation state changed by the idempotent call")
	}
}

func TestTrySetReserved_FailureKeepsExistingReservation(t *testing.T) {
	ls := lotFromLayout(t, []string{
		"..........",
		"....X.....",
		"..........",
		"..........",
	})

	if !ls.TrySetReserved(Position{Row: 0, Col: 0}) {
		t.Fatal("setup reservation failed")
	}
	if ls.TrySetReserved(Position{Row: 1, Col: 4}) {
		t.Fatal("reserving an occupied cell should fail")
	}

	if !ls.Grid[0][0].Reserved {
		t.Error("existing reservation must survive an invalid candidate")
	}
	if !ls.ReservationHeld || (ls.ReservedSpot != Position{Row: 0, Col: 0}) {
		t.Error("reservation target must still point at (0,0)")
	}
}

func TestTrySetReserved_OutOfBounds(t *testing.T) {
	ls := emptyLot(t, 4, 10)

	if ls.TrySetReserved(Position{Row: 4, Col: 0}) {
		t.Error("out-of-bounds reservation should fail")
	}
	if ls.TrySetReserved(Position{Row: 0, Col: -1}) {
		t.Error("out-of-bounds reservation should fail")
	}
}

func TestAddActionToHistory(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	target := Position{Row: 1, Col: 2}

	ls.AddActionToHistory("reserve", &target, "reserved", 0, true)
	ls.AddActionToHistory("navigate_reserved", &target, "ok", 3, true)

	if ls.TotalActions != 2 {
		t.Errorf("expected 2 total actions, got %d", ls.TotalActions)
	}
	if len(ls.ActionHistory) != 2 || len(ls.CurrentActions) != 2 {
		t.Errorf("expected both histories to hold 2 entries, got %d and %d",
			len(ls.ActionHistory), len(ls.CurrentActions))
	}
	last := ls.ActionHistory[1]
	if last.Action != "navigate_reserved" || last.PathLength != 3 || last.ActionNumber != 2 {
		t.Errorf("unexpected last entry: %+v", last)
	}
}
