// Command lotctl provides maintenance tooling for lot configuration files.
//
// It has two subcommands:
//   - validate: checks every *.json file in the config directory for JSON
//     structure, dimension and layout consistency, entrance bounds, and
//     required messages
//   - analyze: prints human-readable heuristics per config (dimensions,
//     occupancy, entrance placement, and which free spots cannot be reached
//     without driving through an occupied cell)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/parking-lot-navigator/lot/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func main() {
	cmd := &cli.Command{
		Name:  "lotctl",
		Usage: "Validate and analyze parking lot configuration files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "Directory containing lot configuration JSON files",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Validate all configuration files",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runValidate(cmd.String("config-dir"))
				},
			},
			{
				Name:  "analyze",
				Usage: "Print heuristics about each configuration file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runAnalyze(cmd.String("config-dir"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runValidate scans the config directory for *.json files and validates each
// one, printing a concise report and returning an error if any are invalid.
func runValidate(configDir string) error {
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		return fmt.Errorf("error finding config files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no config files found in %s", configDir)
	}

	allValid := true
	for _, file := range files {
		result := validateConfigFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
		return nil
	}
	fmt.Println("❌ Some configurations have errors")
	return fmt.Errorf("invalid configurations found")
}

// validateConfigFile loads and validates a single configuration JSON file.
func validateConfigFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.LotConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateLotConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Entrances on a pre-occupied layout cell are legal (routes may cross
	// occupied cells) but usually a design mistake, so surface a warning.
	for _, w := range entranceWarnings(&config) {
		result.Errors = append(result.Errors, w)
	}

	// Add informational data
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Lot: %dx%d", config.Rows, config.Cols))
	if len(config.Layout) > 0 {
		occupied := layoutOccupiedCount(config.Layout)
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Fixed layout: %d occupied, %d free", occupied, config.Rows*config.Cols-occupied))
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Random occupancy: %.0f%%", config.OccupancyProbability*100))
	}
	ve, pe := entrances(&config)
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Entrances: vehicle (%d,%d), pedestrian (%d,%d)", ve.Row, ve.Col, pe.Row, pe.Col))

	return result
}

// runAnalyze prints heuristics for every config file in the directory.
func runAnalyze(configDir string) error {
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		return fmt.Errorf("error finding config files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no config files found in %s", configDir)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeConfigFile(file)
	}
	return nil
}

// analyzeConfigFile prints heuristics about one configuration file.
func analyzeConfigFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.LotConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Lot: %d x %d\n", config.Rows, config.Cols)

	ve, pe := entrances(&config)
	fmt.Printf("Vehicle Entrance: (%d, %d)\n", ve.Row, ve.Col)
	fmt.Printf("Pedestrian Entrance: (%d, %d)\n", pe.Row, pe.Col)

	if len(config.Layout) == 0 {
		fmt.Printf("Occupancy: random at %.0f%% (seed %d)\n", config.OccupancyProbability*100, config.Seed)
		return
	}

	occupied := layoutOccupiedCount(config.Layout)
	total := config.Rows * config.Cols
	fmt.Printf("Occupied: %d/%d (%.0f%%)\n", occupied, total, float64(occupied)/float64(total)*100)

	// Nearest free spot from the pedestrian entrance, by Manhattan distance.
	nearest, found := nearestFreeSpot(config.Layout, pe)
	if found {
		fmt.Printf("Nearest free spot to pedestrian entrance: (%d, %d), distance %d\n",
			nearest.Row, nearest.Col, engine.ManhattanDistance(pe, nearest))
	} else {
		fmt.Printf("⚠️  WARNING: the lot is completely full\n")
	}

	// Coverage under strict routing: which free spots cannot be reached from
	// the vehicle entrance without crossing an occupied cell.
	unreachable := strictUnreachableSpots(config.Layout, ve)
	if len(unreachable) > 0 {
		fmt.Printf("⚠️  WARNING: %d free spots are walled off by occupied cars!\n", len(unreachable))
		for i, p := range unreachable {
			if i < 5 { // Show first 5 unreachable spots
				fmt.Printf("   Unreachable with avoidance: (%d, %d)\n", p.Row, p.Col)
			}
		}
		if len(unreachable) > 5 {
			fmt.Printf("   ... and %d more\n", len(unreachable)-5)
		}
	} else {
		fmt.Printf("✅ Every free spot is reachable without crossing occupied cells\n")
	}
}

// entrances resolves the effective entrance positions, applying the
// (0,0) and (rows-1,cols-1) defaults.
func entrances(config *engine.LotConfig) (vehicle, pedestrian engine.Position) {
	vehicle = engine.Position{Row: 0, Col: 0}
	pedestrian = engine.Position{Row: config.Rows - 1, Col: config.Cols - 1}
	if config.VehicleEntrance != nil {
		vehicle = *config.VehicleEntrance
	}
	if config.PedestrianEntrance != nil {
		pedestrian = *config.PedestrianEntrance
	}
	return vehicle, pedestrian
}

// entranceWarnings reports entrances placed on occupied layout cells.
func entranceWarnings(config *engine.LotConfig) []string {
	if len(config.Layout) == 0 {
		return nil
	}
	var warnings []string
	ve, pe := entrances(config)
	if config.Layout[ve.Row][ve.Col] == byte(engine.LayoutOccupied) {
		warnings = append(warnings, fmt.Sprintf("⚠ vehicle entrance (%d,%d) sits on an occupied cell", ve.Row, ve.Col))
	}
	if config.Layout[pe.Row][pe.Col] == byte(engine.LayoutOccupied) {
		warnings = append(warnings, fmt.Sprintf("⚠ pedestrian entrance (%d,%d) sits on an occupied cell", pe.Row, pe.Col))
	}
	return warnings
}

// layoutOccupiedCount counts 'X' cells in a fixed layout.
func layoutOccupiedCount(layout []string) int {
	count := 0
	for _, row := range layout {
		for _, char := range row {
			if char == engine.LayoutOccupied {
				count++
			}
		}
	}
	return count
}

// nearestFreeSpot returns the free cell closest to from by Manhattan distance.
func nearestFreeSpot(layout []string, from engine.Position) (engine.Position, bool) {
	best := engine.Position{}
	bestDist := -1
	for r, row := range layout {
		for c, char := range row {
			if char != engine.LayoutFree {
				continue
			}
			p := engine.Position{Row: r, Col: c}
			d := engine.ManhattanDistance(from, p)
			if bestDist == -1 || d < bestDist {
				best = p
				bestDist = d
			}
		}
	}
	return best, bestDist != -1
}

// strictUnreachableSpots flood fills from the start over free cells only and
// returns the free cells the fill never reached. Occupied cells block the
// fill, matching the avoid-occupied routing mode.
func strictUnreachableSpots(layout []string, start engine.Position) []engine.Position {
	rows := len(layout)
	if rows == 0 {
		return nil
	}
	cols := len(layout[0])

	isFree := func(r, c int) bool {
		return r >= 0 && r < rows && c >= 0 && c < cols && layout[r][c] == byte(engine.LayoutFree)
	}

	visited := make(map[engine.Position]bool)
	if isFree(start.Row, start.Col) {
		queue := []engine.Position{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			if visited[current] {
				continue
			}
			visited[current] = true

			directions := []engine.Position{
				{Row: current.Row - 1, Col: current.Col},
				{Row: current.Row + 1, Col: current.Col},
				{Row: current.Row, Col: current.Col - 1},
				{Row: current.Row, Col: current.Col + 1},
			}
			for _, next := range directions {
				if !visited[next] && isFree(next.Row, next.Col) {
					queue = append(queue, next)
				}
			}
		}
	}

	var unreachable []engine.Position
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := engine.Position{Row: r, Col: c}
			if isFree(r, c) && !visited[p] {
				unreachable = append(unreachable, p)
			}
		}
	}
	return unreachable
}
