// Package config holds the coordinator's JSON-configured settings,
// following the teacher's Default/LoadFromFile/SaveToFile pattern.
package config

import (
	"encoding/json"
	"os"
)

// CoordinatorConfig holds every coordinator-side tunable: protocol version,
// server-side mutation rate, grid dimensions, step budget, resource
// densities, reproduction threshold, and the HTTP listen address.
type CoordinatorConfig struct {
	ProtocolVersion       uint32  `json:"protocolVersion"`
	ListenAddr            string  `json:"listenAddr"`
	GridWidth             int     `json:"gridWidth"`
	GridHeight            int     `json:"gridHeight"`
	MaxSteps              int     `json:"maxSteps"`
	PlantDensity          float64 `json:"plantDensity"`
	FoodDensity           float64 `json:"foodDensity"`
	ReproductionThreshold float64 `json:"reproductionThreshold"`
	MutationRate          float64 `json:"mutationRate"`
}

// DefaultCoordinatorConfig returns the spec §6 defaults.
func DefaultCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		ProtocolVersion:       2,
		ListenAddr:            ":8080",
		GridWidth:             300,
		GridHeight:            300,
		MaxSteps:              3000,
		PlantDensity:          0.08,
		FoodDensity:           0.04,
		ReproductionThreshold: 60,
		MutationRate:          0.05,
	}
}

// LoadFromFile loads a CoordinatorConfig from a JSON file, starting from
// the defaults so a partial file only overrides what it sets.
func LoadFromFile(filename string) (CoordinatorConfig, error) {
	cfg := DefaultCoordinatorConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveToFile writes cfg to filename as indented JSON.
func SaveToFile(cfg CoordinatorConfig, filename string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
