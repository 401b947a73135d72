package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calc holds all configuration for the single-resolution calculator.
type Calc struct {
	Engine Engine `yaml:"engine"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Verbose adds side effects and the replay digest to the report.
	Verbose bool `yaml:"verbose"`
}

// DefaultCalc returns Calc config with sensible defaults.
func DefaultCalc() Calc {
	return Calc{
		Engine:   DefaultEngine(),
		LogLevel: "info",
	}
}

// LoadCalc loads calculator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalc(path string) (Calc, error) {
	cfg := DefaultCalc()

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
