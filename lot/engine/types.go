package engine

// Validation constants
const (
	MinDimension = 2
	MaxDimension = 50

	DefaultRows                 = 4
	DefaultCols                 = 10
	DefaultOccupancyProbability = 0.3

	// Layout characters for deterministic lot configs
	LayoutFree     = '.'
	LayoutOccupied = 'X'
)

// Position represents row,col coordinates (zero-based)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell represents a single parking lot cell
type Cell struct {
	Occupied    bool `json:"occupied"`
	Highlighted bool `json:"highlighted,omitempty"` // on the most recently computed path
	Reserved    bool `json:"reserved,omitempty"`    // at most one cell at a time
	Goal        bool `json:"goal,omitempty"`        // at most one cell at a time
}

// LotConfig represents the lot configuration from JSON
type LotConfig struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Rows                 int      `json:"rows"`
	Cols                 int      `json:"cols"`
	OccupancyProbability float64  `json:"occupancy_probability"`
	Layout               []string `json:"layout,omitempty"` // optional fixed layout of '.'/'X'
	Seed                 int64    `json:"seed,omitempty"`   // 0 means draw from the clock

	// Optional entrance overrides; defaults are (0,0) and (rows-1,cols-1)
	VehicleEntrance    *Position `json:"vehicle_entrance,omitempty"`
	PedestrianEntrance *Position `json:"pedestrian_entrance,omitempty"`

	Messages struct {
		Welcome         string `json:"welcome"`
		Reserved        string `json:"reserved"`
		SpotUnavailable string `json:"spot_unavailable"`
		PathFound       string `json:"path_found"`
		NoPath          string `json:"no_path"`
		LotFull         string `json:"lot_full"`
		NoReservation   string `json:"no_reservation"`
	} `json:"messages"`
}

// LotState represents the complete parking lot state
type LotState struct {
	Grid [][]Cell `json:"grid"`
	Rows int      `json:"rows"`
	Cols int      `json:"cols"`

	VehicleEntrance    Position `json:"vehicle_entrance"`
	PedestrianEntrance Position `json:"pedestrian_entrance"`

	// ReservedSpot is only meaningful while ReservationHeld is true.
	ReservationHeld bool     `json:"reservation_held"`
	ReservedSpot    Position `json:"reserved_spot"`

	Message    string `json:"message"`
	ConfigName string `json:"config_name"`

	ActionHistory []ActionHistoryEntry `json:"action_history"`
	TotalActions  int                  `json:"total_actions"`

	// CurrentActions tracks only the actions since the last reset. It mirrors
	// ActionHistory entries but gets cleared on reset while ActionHistory
	// remains cumulative.
	CurrentActions      []ActionHistoryEntry `json:"current_actions"`
	CurrentActionsCount int                  `json:"current_actions_count"`
}

// ActionHistoryEntry represents a single controller action in the lot history
type ActionHistoryEntry struct {
	Action       string    `json:"action"` // "reserve", "navigate_reserved", "navigate_nearest"
	Target       *Position `json:"target,omitempty"`
	Outcome      string    `json:"outcome"`
	PathLength   int       `json:"path_length,omitempty"`
	Timestamp    int64     `json:"timestamp"`
	Success      bool      `json:"success"`
	ActionNumber int       `json:"action_number"`
}
