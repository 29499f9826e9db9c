package engine

import (
	"strings"
	"testing"
)

func TestValidateLotConfig_Defaults(t *testing.T) {
	if err := ValidateLotConfig(DefaultLotConfig()); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestValidateLotConfig_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*LotConfig)
		wantSub string
	}{
		{"missing name", func(c *LotConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *LotConfig) { c.Description = "" }, "description is required"},
		{"rows too small", func(c *LotConfig) { c.Rows = 1 }, "rows must be between"},
		{"cols too large", func(c *LotConfig) { c.Cols = 99 }, "cols must be between"},
		{"negative probability", func(c *LotConfig) { c.OccupancyProbability = -0.1 }, "occupancy_probability"},
		{"probability above one", func(c *LotConfig) { c.OccupancyProbability = 1.5 }, "occupancy_probability"},
		{"layout row count mismatch", func(c *LotConfig) { c.Layout = []string{".........."} }, "layout must have"},
		{"layout row width mismatch", func(c *LotConfig) {
			c.Layout = []string{"..........", "..........", "..........", "....."}
		}, "characters to match cols"},
		{"layout bad character", func(c *LotConfig) {
			c.Layout = []string{"..........", "..........", "..........", ".....?...."}
		}, "invalid character"},
		{"vehicle entrance out of bounds", func(c *LotConfig) {
			c.VehicleEntrance = &Position{Row: 4, Col: 0}
		}, "vehicle_entrance"},
		{"pedestrian entrance out of bounds", func(c *LotConfig) {
			c.PedestrianEntrance = &Position{Row: 0, Col: 10}
		}, "pedestrian_entrance"},
		{"missing welcome message", func(c *LotConfig) { c.Messages.Welcome = "" }, "messages.welcome"},
		{"missing lot_full message", func(c *LotConfig) { c.Messages.LotFull = "" }, "messages.lot_full"},
		{"missing no_path message", func(c *LotConfig) { c.Messages.NoPath = "" }, "messages.no_path"},
	}

	for _, tc := range cases {
		config := DefaultLotConfig()
		tc.mutate(config)

		err := ValidateLotConfig(config)
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantSub) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantSub)
		}
	}
}

func TestInitLotStateFromConfig_Layout(t *testing.T) {
	config := DefaultLotConfig()
	config.Rows = 2
	config.Cols = 4
	config.Layout = []string{
		".X.X",
		"X..X",
	}

	state := InitLotStateFromConfig(config)

	wantOccupied := [][]bool{
		{false, true, false, true},
		{true, false, false, true},
	}
	for r := range wantOccupied {
		for c := range wantOccupied[r] {
			if state.Grid[r][c].Occupied != wantOccupied[r][c] {
				t.Errorf("cell (%d,%d): occupied=%v, want %v", r, c, state.Grid[r][c].Occupied, wantOccupied[r][c])
			}
			if state.Grid[r][c].Highlighted || state.Grid[r][c].Reserved || state.Grid[r][c].Goal {
				t.Errorf("cell (%d,%d): non-occupancy flags must start false", r, c)
			}
		}
	}
}

func TestInitLotStateFromConfig_SeededDrawIsDeterministic(t *testing.T) {
	config := DefaultLotConfig()
	config.Seed = 42

	a := InitLotStateFromConfig(config)
	b := InitLotStateFromConfig(config)

	for r := range a.Grid {
		for c := range a.Grid[r] {
			if a.Grid[r][c].Occupied != b.Grid[r][c].Occupied {
				t.Fatalf("seeded draws differ at (%d,%d)", r, c)
			}
		}
	}
}

func TestInitLotStateFromConfig_ProbabilityExtremes(t *testing.T) {
	config := DefaultLotConfig()
	config.Seed = 7

	config.OccupancyProbability = 0
	if free := CountFreeSpots(InitLotStateFromConfig(config).Grid); free != DefaultRows*DefaultCols {
		t.Errorf("probability 0: expected all %d cells free, got %d", DefaultRows*DefaultCols, free)
	}

	config.OccupancyProbability = 1
	if occ := CountOccupiedSpots(InitLotStateFromConfig(config).Grid); occ != DefaultRows*DefaultCols {
		t.Errorf("probability 1: expected all %d cells occupied, got %d", DefaultRows*DefaultCols, occ)
	}
}

func TestInitLotStateFromConfig_EntranceOverrides(t *testing.T) {
	config := DefaultLotConfig()
	config.VehicleEntrance = &Position{Row: 1, Col: 0}
	config.PedestrianEntrance = &Position{Row: 2, Col: 3}

	state := InitLotStateFromConfig(config)

	if (state.VehicleEntrance != Position{Row: 1, Col: 0}) {
		t.Errorf("vehicle entrance override not applied: (%d,%d)",
			state.VehicleEntrance.Row, state.VehicleEntrance.Col)
	}
	if (state.PedestrianEntrance != Position{Row: 2, Col: 3}) {
		t.Errorf("pedestrian entrance override not applied: (%d,%d)",
			state.PedestrianEntrance.Row, state.PedestrianEntrance.Col)
	}
}

func TestInitLotStateFromConfig_NilUsesDefaults(t *testing.T) {
	state := InitLotStateFromConfig(nil)

	if state.Rows != DefaultRows || state.Cols != DefaultCols {
		t.Errorf("expected default %dx%d lot, got %dx%d", DefaultRows, DefaultCols, state.Rows, state.Cols)
	}
	if state.Message == "" {
		t.Error("expected a welcome message")
	}
}
