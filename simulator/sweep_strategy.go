package main

import (
	"log"
	"sort"
)

// SweepStrategy plans a complete reservation sweep over the lot before
// execution. Free spots are visited in order of driving distance from the
// vehicle entrance, nearest first, so early rounds exercise short routes and
// later attempts the far corners.
type SweepStrategy struct {
	entrance Position

	// Planned visiting order
	order []Position
	index int

	// Spots reported unavailable by the server. Kept across rounds only
	// for fixed-layout lots; Reset rebuilds the plan from fresh state.
	occupied map[Position]bool
}

func NewSweepStrategy(state *LotState) *SweepStrategy {
	s := &SweepStrategy{
		occupied: make(map[Position]bool),
	}
	s.plan(state)

	log.Printf("📊 Sweep plan: %d free spots, entrance (%d,%d)",
		len(s.order), s.entrance.Row, s.entrance.Col)
	return s
}

// plan scans the grid for free spots and sorts them by Manhattan distance
// from the vehicle entrance, row-major on ties.
func (s *SweepStrategy) plan(state *LotState) {
	s.entrance = state.VehicleEntrance
	s.order = s.order[:0]
	s.index = 0

	for r := 0; r < state.Rows; r++ {
		for c := 0; c < state.Cols; c++ {
			if state.Grid[r][c].Occupied {
				continue
			}
			s.order = append(s.order, Position{Row: r, Col: c})
		}
	}

	sort.SliceStable(s.order, func(i, j int) bool {
		return manhattan(s.entrance, s.order[i]) < manhattan(s.entrance, s.order[j])
	})
}

// NextSpot returns the next spot to attempt, skipping anything already
// reported unavailable. ok is false once the plan is exhausted.
func (s *SweepStrategy) NextSpot() (Position, bool) {
	for s.index < len(s.order) {
		spot := s.order[s.index]
		s.index++
		if s.occupied[spot] {
			continue
		}
		return spot, true
	}
	return Position{}, false
}

// MarkOccupied records a server-side spot_unavailable so the spot is not
// retried within this round.
func (s *SweepStrategy) MarkOccupied(spot Position) {
	s.occupied[spot] = true
}

// Reset rebuilds the plan from post-reset lot state. Random-occupancy lots
// redraw on reset, so stale unavailability records are dropped too.
func (s *SweepStrategy) Reset(state *LotState) {
	s.occupied = make(map[Position]bool)
	s.plan(state)
}
