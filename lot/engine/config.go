package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ValidateLotConfig validates a lot configuration for correctness
func ValidateLotConfig(config *LotConfig) error {
	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate dimensions
	if config.Rows < MinDimension || config.Rows > MaxDimension {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinDimension, MaxDimension, config.Rows)
	}
	if config.Cols < MinDimension || config.Cols > MaxDimension {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinDimension, MaxDimension, config.Cols)
	}

	// Validate occupancy settings
	if config.OccupancyProbability < 0 || config.OccupancyProbability > 1 {
		return fmt.Errorf("config validation: occupancy_probability must be between 0 and 1, got %v", config.OccupancyProbability)
	}

	// Validate layout when one is given
	if len(config.Layout) > 0 {
		if len(config.Layout) != config.Rows {
			return fmt.Errorf("config validation: layout must have %d rows to match rows, got %d",
				config.Rows, len(config.Layout))
		}
		for i, row := range config.Layout {
			if len(row) != config.Cols {
				return fmt.Errorf("config validation: layout row %d must have %d characters to match cols, got %d",
					i+1, config.Cols, len(row))
			}
			for j, char := range row {
				switch char {
				case LayoutFree, LayoutOccupied:
				default:
					return fmt.Errorf("config validation: invalid character %q at row %d, col %d", char, i+1, j+1)
				}
			}
		}
	}

	// Validate entrance overrides
	if p := config.VehicleEntrance; p != nil {
		if p.Row < 0 || p.Row >= config.Rows || p.Col < 0 || p.Col >= config.Cols {
			return fmt.Errorf("config validation: vehicle_entrance (%d,%d) is out of bounds for a %dx%d lot",
				p.Row, p.Col, config.Rows, config.Cols)
		}
	}
	if p := config.PedestrianEntrance; p != nil {
		if p.Row < 0 || p.Row >= config.Rows || p.Col < 0 || p.Col >= config.Cols {
			return fmt.Errorf("config validation: pedestrian_entrance (%d,%d) is out of bounds for a %dx%d lot",
				p.Row, p.Col, config.Rows, config.Cols)
		}
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.LotFull == "" {
		return fmt.Errorf("config validation: messages.lot_full is required")
	}
	if config.Messages.NoPath == "" {
		return fmt.Errorf("config validation: messages.no_path is required")
	}

	return nil
}

// LoadLotConfig loads a lot configuration from a JSON file
func LoadLotConfig(filename string) (*LotConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config LotConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateLotConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a lot configuration by name from the configs directory
func LoadConfigByName(configName string) (*LotConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config LotConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	if err := ValidateLotConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// DefaultLotConfig returns the built-in reference configuration: a 4x10 lot
// with independent random occupancy at probability 0.3.
func DefaultLotConfig() *LotConfig {
	config := &LotConfig{
		Name:                 "classic",
		Description:          "Reference 4x10 lot with random occupancy",
		Rows:                 DefaultRows,
		Cols:                 DefaultCols,
		OccupancyProbability: DefaultOccupancyProbability,
	}
	config.Messages.Welcome = "Welcome! Pick a spot to reserve, or ask for the nearest free one."
	config.Messages.Reserved = "Spot (%d,%d) reserved"
	config.Messages.SpotUnavailable = "That spot is taken"
	config.Messages.PathFound = "Route ready: %d steps to your spot"
	config.Messages.NoPath = "No route to that spot"
	config.Messages.LotFull = "Lot is full"
	config.Messages.NoReservation = "No spot reserved yet"
	return config
}

// InitLotStateFromConfig creates a new lot state using the provided
// configuration. The occupancy draw happens here, once; occupied never
// changes afterwards.
func InitLotStateFromConfig(config *LotConfig) *LotState {
	if config == nil {
		config = DefaultLotConfig()
	}

	rows, cols := config.Rows, config.Cols

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}

	if len(config.Layout) > 0 {
		for r := 0; r < rows && r < len(config.Layout); r++ {
			for c := 0; c < cols && c < len(config.Layout[r]); c++ {
				grid[r][c].Occupied = config.Layout[r][c] == LayoutOccupied
			}
		}
	} else {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				grid[r][c].Occupied = rng.Float64() < config.OccupancyProbability
			}
		}
	}

	vehicleEntrance := Position{Row: 0, Col: 0}
	if config.VehicleEntrance != nil {
		vehicleEntrance = *config.VehicleEntrance
	}
	pedestrianEntrance := Position{Row: rows - 1, Col: cols - 1}
	if config.PedestrianEntrance != nil {
		pedestrianEntrance = *config.PedestrianEntrance
	}

	return &LotState{
		Grid:                grid,
		Rows:                rows,
		Cols:                cols,
		VehicleEntrance:     vehicleEntrance,
		PedestrianEntrance:  pedestrianEntrance,
		ReservationHeld:     false,
		Message:             config.Messages.Welcome,
		ConfigName:          config.Name,
		ActionHistory:       []ActionHistoryEntry{},
		TotalActions:        0,
		CurrentActions:      []ActionHistoryEntry{},
		CurrentActionsCount: 0,
	}
}
