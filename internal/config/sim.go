package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sim holds all configuration for the Monte Carlo simulator.
type Sim struct {
	Engine Engine `yaml:"engine"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Iterations is the number of independent resolutions per matchup.
	Iterations int `yaml:"iterations"`

	// Workers bounds the parallel resolution goroutines. Zero means one
	// per CPU.
	Workers int `yaml:"workers"`

	// StoreReplays seals one verifiable replay per distinct damage
	// outcome and persists them to the database.
	StoreReplays bool `yaml:"store_replays"`

	Database DatabaseConfig `yaml:"database"`
}

// DefaultSim returns Sim config with sensible defaults.
func DefaultSim() Sim {
	return Sim{
		Engine:     DefaultEngine(),
		LogLevel:   "info",
		Iterations: 10000,
		Workers:    0,
		Database:   DefaultDatabase(),
	}
}

// LoadSim loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSim(path string) (Sim, error) {
	cfg := DefaultSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
