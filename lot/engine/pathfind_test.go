package engine

import (
	"errors"
	"testing"
)

// lotFromLayout builds a lot state from '.'/'X' rows with default entrances.
func lotFromLayout(t *testing.T, layout []string) *LotState {
	t.Helper()

	config := DefaultLotConfig()
	config.Rows = len(layout)
	config.Cols = len(layout[0])
	config.Layout = layout

	if err := ValidateLotConfig(config); err != nil {
		t.Fatalf("test layout invalid: %v", err)
	}
	return InitLotStateFromConfig(config)
}

func emptyLot(t *testing.T, rows, cols int) *LotState {
	t.Helper()

	layout := make([]string, rows)
	for r := range layout {
		row := make([]byte, cols)
		for c := range row {
			row[c] = LayoutFree
		}
		layout[r] = string(row)
	}
	return lotFromLayout(t, layout)
}

func TestFindPath_ManhattanLength(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	start := Position{Row: 0, Col: 0}

	goals := []Position{
		{Row: 0, Col: 1},
		{Row: 3, Col: 0},
		{Row: 3, Col: 9},
		{Row: 1, Col: 5},
		{Row: 2, Col: 7},
	}

	for _, goal := range goals {
		path, err := FindPath(ls, start, goal, PathOptions{})
		if err != nil {
			t.Fatalf("FindPath to (%d,%d) failed: %v", goal.Row, goal.Col, err)
		}

		want := ManhattanDistance(start, goal)
		if len(path) != want {
			t.Errorf("path to (%d,%d): got length %d, want Manhattan distance %d",
				goal.Row, goal.Col, len(path), want)
		}
		if path[len(path)-1] != goal {
			t.Errorf("path to (%d,%d): last element is (%d,%d), want the goal",
				goal.Row, goal.Col, path[len(path)-1].Row, path[len(path)-1].Col)
		}
		if path[0] == start {
			t.Errorf("path to (%d,%d): start cell should be excluded", goal.Row, goal.Col)
		}
	}
}

func TestFindPath_StepsAreAdjacent(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	start := Position{Row: 0, Col: 0}
	goal := Position{Row: 3, Col: 9}

	path, err := FindPath(ls, start, goal, PathOptions{})
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}

	prev := start
	for i, p := range path {
		if ManhattanDistance(prev, p) != 1 {
			t.Errorf("step %d: (%d,%d) -> (%d,%d) is not a single 4-connected move",
				i, prev.Row, prev.Col, p.Row, p.Col)
		}
		prev = p
	}
}

func TestFindPath_OccupiedGoalFails(t *testing.T) {
	// Goal is adjacent to the start and perfectly reachable; it must still
	// fail because the goal cell itself is occupied.
	ls := lotFromLayout(t, []string{
		".X..",
		"....",
	})

	_, err := FindPath(ls, Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1}, PathOptions{})
	if !errors.Is(err, ErrNoPathFound) {
		t.Errorf("expected ErrNoPathFound for occupied goal, got %v", err)
	}
}

func TestFindPath_SelfPath(t *testing.T) {
	ls := emptyLot(t, 4, 10)
	p := Position{Row: 2, Col: 3}

	path, err := FindPath(ls, p, p, PathOptions{})
	if err != nil {
		t.Fatalf("FindPath to self failed: %v", err)
	}
	if len(path) != 1 || path[0] != p {
		t.Errorf("expected single-element path [(%d,%d)], got %v", p.Row, p.Col, path)
	}
}

func TestFindPath_SelfPathOccupied(t *testing.T) {
	ls := lotFromLayout(t, []string{
		"X...",
		"....",
	})

	_, err := FindPath(ls, Position{}, Position{}, PathOptions{})
	if !errors.Is(err, ErrNoPathFound) {
		t.Errorf("expected ErrNoPathFound for occupied self goal, got %v", err)
	}
}

func TestFindPath_OutOfBounds(t *testing.T) {
	ls := emptyLot(t, 4, 10)

	cases := []struct {
		name        string
		start, goal Position
	}{
		{"start row negative", Position{Row: -1, Col: 0}, Position{Row: 0, Col: 0}},
		{"start col too large", Position{Row: 0, Col: 10}, Position{Row: 0, Col: 0}},
		{"goal row too large", Position{Row: 0, Col: 0}, Position{Row: 4, Col: 0}},
		{"goal col negative", Position{Row: 0, Col: 0}, Position{Row: 0, Col: -1}},
	}

	for _, tc := range cases {
		if _, err := FindPath(ls, tc.start, tc.goal, PathOptions{}); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("%s: expected ErrInvalidCoordinate, got %v", tc.name, err)
		}
	}
}

func TestFindPath_TraversesOccupiedCells(t *testing.T) {
	// A solid occupied column separates start and goal. The default search
	// drives straight through it, so the path stays Manhattan-optimal.
	ls := lotFromLayout(t, []string{
		"..X..",
		"..X..",
		"..X..",
	})
	start := Position{Row: 1, Col: 0}
	goal := Position{Row: 1, Col: 4}

	path, err := FindPath(ls, start, goal, PathOptions{})
	if err != nil {
		t.Fatalf("FindPath through occupied column failed: %v", err)
	}
	if len(path) != ManhattanDistance(start, goal) {
		t.Errorf("got length %d, want %d", len(path), ManhattanDistance(start, goal))
	}
}

func TestFindPath_AvoidOccupiedOption(t *testing.T) {
	// With AvoidOccupied the solid column becomes a wall: no route exists.
	ls := lotFromLayout(t, []string{
		"..X..",
		"..X..",
		"..X..",
	})
	start := Position{Row: 1, Col: 0}
	goal := Position{Row: 1, Col: 4}

	_, err := FindPath(ls, start, goal, PathOptions{AvoidOccupied: true})
	if !errors.Is(err, ErrNoPathFound) {
		t.Errorf("expected ErrNoPathFound with AvoidOccupied, got %v", err)
	}

	// A gap in the wall lets the strict search detour through it.
	ls = lotFromLayout(t, []string{
		"..X..",
		"..X..",
		".....",
	})
	path, err := FindPath(ls, start, goal, PathOptions{AvoidOccupied: true})
	if err != nil {
		t.Fatalf("FindPath with AvoidOccupied and a gap failed: %v", err)
	}
	if len(path) <= ManhattanDistance(start, goal) {
		t.Errorf("detour path should be longer than Manhattan distance %d, got %d",
			ManhattanDistance(start, goal), len(path))
	}
	for _, p := range path {
		if ls.CellAt(p).Occupied {
			t.Errorf("AvoidOccupied path crosses occupied cell (%d,%d)", p.Row, p.Col)
		}
	}
}

func TestFindPath_DoesNotMutateGrid(t *testing.T) {
	ls := emptyLot(t, 4, 10)

	before := make([][]Cell, len(ls.Grid))
	for r := range ls.Grid {
		before[r] = append([]Cell{}, ls.Grid[r]...)
	}

	if _, err := FindPath(ls, Position{}, Position{Row: 3, Col: 9}, PathOptions{}); err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}

	for r := range before {
		for c := range before[r] {
			if ls.Grid[r][c] != before[r][c] {
				t.Fatalf("FindPath mutated cell (%d,%d)", r, c)
			}
		}
	}
}
