package config

import (
	"os"
	"testing"
)

func TestDefaultCoordinatorConfigMatchesSpecDefaults(t *testing.T) {
	cfg := DefaultCoordinatorConfig()

	if cfg.GridWidth != 300 || cfg.GridHeight != 300 {
		t.Errorf("grid = %dx%d; want 300x300", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.MaxSteps != 3000 {
		t.Errorf("MaxSteps = %d; want 3000", cfg.MaxSteps)
	}
	if cfg.MutationRate != 0.05 {
		t.Errorf("MutationRate = %v; want 0.05", cfg.MutationRate)
	}
	if cfg.ReproductionThreshold != 60 {
		t.Errorf("ReproductionThreshold = %v; want 60", cfg.ReproductionThreshold)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := DefaultCoordinatorConfig()
	cfg.ListenAddr = ":9090"
	cfg.MaxSteps = 500

	f, err := os.CreateTemp("", "coordinator_*.json")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	f.Close()
	defer os.Remove(f.Name())

	if err := SaveToFile(cfg, f.Name()); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(f.Name())
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v; want %+v", loaded, cfg)
	}
}

func TestLoadFromFilePropagatesReadError(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/path/config.json"); err == nil {
		t.Error("LoadFromFile did not return an error for a missing file")
	}
}
