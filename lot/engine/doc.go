// Package engine provides the core logic for the Parking Lot Navigator.
//
// The engine package implements:
//   - The lot grid model: per-cell occupancy, reservation, highlight, and
//     goal flags with at-most-one reservation and goal at any time
//   - Breadth-first path search from the vehicle entrance to a target spot
//   - Nearest-free-spot search from the pedestrian entrance
//   - Reservation orchestration, action history, and lot reset
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for lot operations,
// implemented by LotEngine. LotState represents the current lot state, while
// LotConfig defines the lot dimensions, occupancy draw, and messages loaded
// from JSON files.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	lotEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Reserve a spot, then route to it
//	if err := lotEngine.Reserve(engine.Position{Row: 3, Col: 0}); err == nil {
//		path, _ := lotEngine.NavigateToReserved()
//		_ = path
//	}
//
// Search Semantics:
//
// Both searches are breadth-first over the 4-connected grid with the fixed
// neighbor order up, down, left, right. Path search traverses occupied cells
// freely and only requires the destination itself to be free; the stricter
// behavior is available through PathOptions.AvoidOccupied. The occupancy map
// is drawn once at lot creation and never changes afterwards; reservations,
// highlights, and the goal marker are the only mutable cell state.
package engine
