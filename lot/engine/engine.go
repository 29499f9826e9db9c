package engine

import "fmt"

// Engine provides the main interface for parking lot operations
type Engine interface {
	// Lot state management
	GetState() *LotState
	SetState(state *LotState) error
	Reset() *LotState
	ReservationHeld() bool
	ReservedSpot() (Position, bool)
	FreeSpots() int

	// Reservation and navigation operations
	Reserve(p Position) error
	NavigateToReserved() ([]Position, error)
	NavigateToNearestSpot() (Position, []Position, error)

	// Configuration
	GetConfig() *LotConfig
	SetConfig(config *LotConfig) error

	// History
	GetActionHistory() []ActionHistoryEntry
	GetLastAction() *ActionHistoryEntry
}

// LotEngine implements the Engine interface. It owns the single grid instance
// and orchestrates the two searches; all search logic lives in FindPath and
// FindNearestFreeSpot.
type LotEngine struct {
	state  *LotState
	config *LotConfig
}

// NewEngine creates a new lot engine with the provided configuration
func NewEngine(config *LotConfig) (*LotEngine, error) {
	if err := ValidateLotConfig(config); err != nil {
		return nil, err
	}

	eng := &LotEngine{
		config: config,
		state:  InitLotStateFromConfig(config),
	}

	return eng, nil
}

// NewEngineWithDefaults creates a new lot engine with the reference configuration
func NewEngineWithDefaults() *LotEngine {
	eng := &LotEngine{
		config: DefaultLotConfig(),
	}
	eng.state = InitLotStateFromConfig(eng.config)
	return eng
}

// GetState returns the current lot state
func (e *LotEngine) GetState() *LotState {
	return e.state
}

// SetState sets the lot state (used by tests to install a known grid)
func (e *LotEngine) SetState(state *LotState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset redraws the lot from the configuration. Cumulative action history
// survives a reset; only the current segment is cleared.
func (e *LotEngine) Reset() *LotState {
	prevHistory := e.state.ActionHistory
	prevTotal := e.state.TotalActions

	e.state = InitLotStateFromConfig(e.config)

	e.state.ActionHistory = prevHistory
	e.state.TotalActions = prevTotal
	e.state.CurrentActions = []ActionHistoryEntry{}
	e.state.CurrentActionsCount = 0

	return e.state
}

// ReservationHeld reports whether a reservation is currently held
func (e *LotEngine) ReservationHeld() bool {
	return e.state.ReservationHeld
}

// ReservedSpot returns the current reservation target, if any
func (e *LotEngine) ReservedSpot() (Position, bool) {
	return e.state.ReservedSpot, e.state.ReservationHeld
}

// FreeSpots returns the number of unoccupied cells in the lot
func (e *LotEngine) FreeSpots() int {
	return CountFreeSpots(e.state.Grid)
}

// Reserve attempts to reserve the spot at p. Out-of-bounds coordinates are
// rejected before any grid mutation; occupied or already-reserved targets
// fail with ErrSpotUnavailable and leave the grid untouched.
func (e *LotEngine) Reserve(p Position) error {
	if !e.state.InBounds(p) {
		e.state.AddActionToHistory("reserve", &p, "invalid_coordinate", 0, false)
		return ErrInvalidCoordinate
	}

	if !e.state.TrySetReserved(p) {
		e.state.Message = e.config.Messages.SpotUnavailable
		e.state.AddActionToHistory("reserve", &p, "spot_unavailable", 0, false)
		return ErrSpotUnavailable
	}

	if e.config.Messages.Reserved != "" {
		e.state.Message = fmt.Sprintf(e.config.Messages.Reserved, p.Row, p.Col)
	}
	e.state.AddActionToHistory("reserve", &p, "reserved", 0, true)
	return nil
}

// NavigateToReserved runs the path search from the vehicle entrance to the
// reserved spot and, on success, applies the highlight and goal marker. On
// any failure the grid is left unchanged and the outcome is returned.
func (e *LotEngine) NavigateToReserved() ([]Position, error) {
	if !e.state.ReservationHeld {
		e.state.Message = e.config.Messages.NoReservation
		e.state.AddActionToHistory("navigate_reserved", nil, "no_reservation", 0, false)
		return nil, ErrNoActiveReservation
	}

	target := e.state.ReservedSpot
	path, err := FindPath(e.state, e.state.VehicleEntrance, target, PathOptions{})
	if err != nil {
		e.state.Message = e.config.Messages.NoPath
		e.state.AddActionToHistory("navigate_reserved", &target, "no_path", 0, false)
		return nil, err
	}

	e.state.SetHighlighted(path)
	e.state.SetGoal(target)
	if e.config.Messages.PathFound != "" {
		e.state.Message = fmt.Sprintf(e.config.Messages.PathFound, len(path))
	}
	e.state.AddActionToHistory("navigate_reserved", &target, "ok", len(path), true)
	return path, nil
}

// NavigateToNearestSpot locates the nearest free spot to the pedestrian
// entrance, then routes to it from the vehicle entrance and applies the
// highlight and goal marker. A full lot surfaces ErrLotFull with the grid
// unchanged.
func (e *LotEngine) NavigateToNearestSpot() (Position, []Position, error) {
	spot, _, err := FindNearestFreeSpot(e.state)
	if err != nil {
		e.state.Message = e.config.Messages.LotFull
		e.state.AddActionToHistory("navigate_nearest", nil, "lot_full", 0, false)
		return Position{}, nil, err
	}

	path, err := FindPath(e.state, e.state.VehicleEntrance, spot, PathOptions{})
	if err != nil {
		e.state.Message = e.config.Messages.NoPath
		e.state.AddActionToHistory("navigate_nearest", &spot, "no_path", 0, false)
		return Position{}, nil, err
	}

	e.state.SetHighlighted(path)
	e.state.SetGoal(spot)
	if e.config.Messages.PathFound != "" {
		e.state.Message = fmt.Sprintf(e.config.Messages.PathFound, len(path))
	}
	e.state.AddActionToHistory("navigate_nearest", &spot, "ok", len(path), true)
	return spot, path, nil
}

// GetConfig returns the current lot configuration
func (e *LotEngine) GetConfig() *LotConfig {
	return e.config
}

// SetConfig sets a new lot configuration and redraws the lot
func (e *LotEngine) SetConfig(config *LotConfig) error {
	if err := ValidateLotConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitLotStateFromConfig(config)
	return nil
}

// GetActionHistory returns the complete action history
func (e *LotEngine) GetActionHistory() []ActionHistoryEntry {
	return e.state.ActionHistory
}

// GetLastAction returns the last action taken, or nil if none
func (e *LotEngine) GetLastAction() *ActionHistoryEntry {
	if len(e.state.ActionHistory) == 0 {
		return nil
	}
	return &e.state.ActionHistory[len(e.state.ActionHistory)-1]
}
