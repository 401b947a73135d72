package config

import "fmt"

// Engine holds the damage-resolution settings shared by every binary.
type Engine struct {
	// Rounding selects how modifier products are floored: "single-floor"
	// floors once after the full product, "per-stage-floor" floors after
	// every stage.
	Rounding string `yaml:"rounding"`

	// Seed fixes the random source. Zero means draw a fresh seed.
	Seed uint64 `yaml:"seed"`
}

// DefaultEngine returns Engine config with single-floor rounding and a
// fresh seed per run.
func DefaultEngine() Engine {
	return Engine{
		Rounding: "single-floor",
		Seed:     0,
	}
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultDatabase returns DatabaseConfig pointing at a local instance.
func DefaultDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     5432,
		User:     "battlecalc",
		Password: "battlecalc",
		DBName:   "battlecalc",
		SSLMode:  "disable",
	}
}
