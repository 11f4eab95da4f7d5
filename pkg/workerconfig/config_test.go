package workerconfig

import (
	"os"
	"testing"
	"time"
)

func TestDefaultIsUsable(t *testing.T) {
	cfg := Default()
	if cfg.Concurrency < 1 {
		t.Errorf("Concurrency = %d; want >= 1", cfg.Concurrency)
	}
	if cfg.CoordinatorURL == "" {
		t.Error("CoordinatorURL is empty")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Concurrency = 4
	cfg.PollInterval = 5 * time.Second

	f, err := os.CreateTemp("", "worker_*.yaml")
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

func TestLoadFromFilePartialOverridesOnlySetFields(t *testing.T) {
	f, err := os.CreateTemp("", "worker_partial_*.yaml")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString("concurrency: 8\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	loaded, err := LoadFromFile(f.Name())
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Concurrency != 8 {
		t.Errorf("Concurrency = %d; want 8", loaded.Concurrency)
	}
	if loaded.CoordinatorURL != Default().CoordinatorURL {
		t.Errorf("CoordinatorURL = %q; want default preserved", loaded.CoordinatorURL)
	}
}
