package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/ecotrack"
	"github.com/shopspring/decimal"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const testingNowLayout = "2006-01-02 15:04:05"

// Config is the environment configuration of the eco command.
//
// Global flags, when set, take precedence over the environment.
type Config struct {
	Home    string `env:"ECOTRACK_HOME" envDefault:".ecotrack"`
	Backend string `env:"ECOTRACK_BACKEND" envDefault:"file"`
	Key     string `env:"ECOTRACK_KEY" envDefault:"ecotrack"`

	RiskLow    decimal.Decimal `env:"ECOTRACK_RISK_LOW" envDefault:"3"`
	RiskMedium decimal.Decimal `env:"ECOTRACK_RISK_MEDIUM" envDefault:"1"`

	LogLevel  string `env:"ECOTRACK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"ECOTRACK_LOG_FORMAT" envDefault:"console"`

	// TestingNow freezes the clock, in the "2006-01-02 15:04:05" layout. The
	// documentation examples run with it to get stable dates and ids.
	TestingNow string `env:"ECOTRACK_TESTING_NOW"`
}

// LoadConfig reads the environment, then applies the global flags.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if *homeFlag != "" {
		cfg.Home = *homeFlag
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}
	if *keyFlag != "" {
		cfg.Key = *keyFlag
	}
	if *verboseFlag {
		cfg.LogLevel = "debug"
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	switch cfg.Backend {
	case BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown backend %q, want %q or %q", cfg.Backend, BackendFile, BackendSQLite)
	}
	if err := cfg.RiskPolicy().Validate(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Clock(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Clock returns the clock of the store, frozen when TestingNow is set.
func (c Config) Clock() (func() time.Time, error) {
	if c.TestingNow == "" {
		return time.Now, nil
	}
	now, err := time.Parse(testingNowLayout, c.TestingNow)
	if err != nil {
		return nil, fmt.Errorf("invalid ECOTRACK_TESTING_NOW %q: %w", c.TestingNow, err)
	}
	return func() time.Time { return now }, nil
}

// RiskPolicy returns the configured risk thresholds.
func (c Config) RiskPolicy() ecotrack.RiskPolicy {
	return ecotrack.RiskPolicy{Low: c.RiskLow, Medium: c.RiskMedium}
}
