// Package workerconfig holds a worker's purely local, YAML-configured
// operational settings — never serialized over the wire, unlike
// pkg/config's coordinator tree.
package workerconfig

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds one worker process's operational settings.
type Config struct {
	CoordinatorURL string        `yaml:"coordinator_url"`
	ClientVersion  string        `yaml:"client_version"`
	PollInterval   time.Duration `yaml:"poll_interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RetryBackoff   time.Duration `yaml:"retry_backoff"`
	MaxRetries     int           `yaml:"max_retries"`
	Concurrency    int           `yaml:"concurrency"`
	ResultsDir     string        `yaml:"results_dir"`
}

// Default returns reasonable defaults for a worker talking to a
// locally-run coordinator.
func Default() Config {
	return Config{
		CoordinatorURL: "http://localhost:8080",
		ClientVersion:  "0.1.0",
		PollInterval:   time.Second,
		RequestTimeout: 30 * time.Second,
		RetryBackoff:   2 * time.Second,
		MaxRetries:     5,
		Concurrency:    1,
	}
}

// LoadFromFile loads a Config from a YAML file, starting from Default so a
// partial file only overrides what it sets.
func LoadFromFile(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveToFile writes cfg to filename as YAML.
func SaveToFile(cfg Config, filename string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
