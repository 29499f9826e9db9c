package service

import (
	"time"

	"github.com/wricardo/parking-lot-navigator/lot/engine"
)

// Outcome codes surfaced to API and MCP clients. Failures here are ordinary
// parking-lot states, so they travel as codes on a successful response rather
// than transport errors.
const (
	OutcomeOK                = "ok"
	OutcomeReserved          = "reserved"
	OutcomeSpotUnavailable   = "spot_unavailable"
	OutcomeInvalidCoordinate = "invalid_coordinate"
	OutcomeNoPath            = "no_path"
	OutcomeLotFull           = "lot_full"
	OutcomeNoReservation     = "no_reservation"
)

// SessionInfo provides information about a lot session
type SessionInfo struct {
	ID             string            `json:"id"`
	ConfigName     string            `json:"config_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	LotState       *engine.LotState  `json:"lot_state"`
	LotConfig      *engine.LotConfig `json:"lot_config"`
}

// ReserveResult contains the result of a reservation attempt
type ReserveResult struct {
	Success  bool             `json:"success"`
	Outcome  string           `json:"outcome"`
	Spot     engine.Position  `json:"spot"`
	LotState *engine.LotState `json:"lot_state"`
	Message  string           `json:"message"`
	Events   []LotEvent       `json:"events,omitempty"`
}

// NavigateResult contains the result of a navigation request
type NavigateResult struct {
	Success    bool              `json:"success"`
	Outcome    string            `json:"outcome"`
	LotState   *engine.LotState  `json:"lot_state"`
	Message    string            `json:"message"`
	Path       []engine.Position `json:"path,omitempty"`
	PathLength int               `json:"path_length"`
	Goal       *engine.Position  `json:"goal,omitempty"`
	Events     []LotEvent        `json:"events,omitempty"`
}

// LotEvent represents an event that occurred during a lot operation
type LotEvent struct {
	Type      string           `json:"type"` // "reserve", "path_found", "lot_full", "reset"
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures action history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated action history
type HistoryResponse struct {
	Actions      []engine.ActionHistoryEntry `json:"actions"`
	TotalActions int                         `json:"total_actions"`
	Page         int                         `json:"page"`
	PageSize     int                         `json:"page_size"`
	TotalPages   int                         `json:"total_pages"`
	HasNext      bool                        `json:"has_next"`
	HasPrevious  bool                        `json:"has_previous"`
}

// ConfigInfo provides information about a lot configuration
type ConfigInfo struct {
	Filename             string  `json:"filename"`
	ConfigID             string  `json:"config_id"` // The identifier to use for session creation
	Name                 string  `json:"name"`      // Display name
	Description          string  `json:"description"`
	Rows                 int     `json:"rows"`
	Cols                 int     `json:"cols"`
	OccupancyProbability float64 `json:"occupancy_probability"`
}
