// Package config provides configuration management for the Parking Lot Navigator.
//
// The config package handles:
//   - Loading lot configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Lot configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Grid dimensions (rows and cols)
//   - Either a fixed layout of '.' and 'X' characters or an occupancy
//     probability with an optional seed for reproducible draws
//   - Vehicle and pedestrian entrance positions
//   - Messages for reservation and navigation events
//
// Available Configurations:
//
// The package ships with several lot profiles:
//   - classic: the reference 4x10 lot with 30% occupancy
//   - weekday_rush: a dense lot where most spots are taken
//   - showroom: a fixed layout with a deterministic occupancy pattern
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	lotConfig, err := manager.LoadConfig("weekday_rush")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Grid dimensions within supported bounds
//   - Layout rows matching the declared dimensions
//   - Occupancy probability within [0,1]
//   - Entrance coordinates inside the grid
//   - Required message templates
//
// Loaded configurations are cached; RefreshCache drops the cache so edits
// on disk become visible without a restart.
package config
