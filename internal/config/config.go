// Package config loads ls-skygeom settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-skygeom/internal/constellation"
	"github.com/litescript/ls-skygeom/internal/logging"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Chart controls the sky view's field of view, in degrees.
type Chart struct {
	WidthDeg  float64 `yaml:"width_deg"`
	HeightDeg float64 `yaml:"height_deg"`
}

// Config holds application settings.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
	Chart    Chart  `yaml:"chart"`

	// SkipDefaults drops the built-in boundary set, leaving only Boundaries.
	SkipDefaults bool                     `yaml:"skip_defaults"`
	Boundaries   []constellation.Boundary `yaml:"boundaries"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  runtime.NumCPU(),
		Chart:    Chart{WidthDeg: 60, HeightDeg: 30},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and boundary definitions. Boundaries are only
// checked for shape here; polygon construction happens in the registry.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Chart.WidthDeg <= 0 || c.Chart.WidthDeg > 180 {
		return fmt.Errorf("%w: chart.width_deg must be in (0, 180], got %v", ErrInvalid, c.Chart.WidthDeg)
	}
	if c.Chart.HeightDeg <= 0 || c.Chart.HeightDeg > 180 {
		return fmt.Errorf("%w: chart.height_deg must be in (0, 180], got %v", ErrInvalid, c.Chart.HeightDeg)
	}
	if c.SkipDefaults && len(c.Boundaries) == 0 {
		return fmt.Errorf("%w: skip_defaults set but no boundaries given", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Boundaries))
	for i, b := range c.Boundaries {
		if b.ID == "" {
			return fmt.Errorf("%w: boundary %d has no id", ErrInvalid, i)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: boundary %s defined twice", ErrInvalid, b.ID)
		}
		seen[b.ID] = true
		if len(b.Vertices) < 3 {
			return fmt.Errorf("%w: boundary %s has %d vertices, need at least 3", ErrInvalid, b.ID, len(b.Vertices))
		}
	}
	return nil
}

// AllBoundaries returns the boundary set the registry should be built from:
// the built-in boundaries overridden and extended by the configured ones.
func (c Config) AllBoundaries() []constellation.Boundary {
	if c.SkipDefaults {
		return append([]constellation.Boundary(nil), c.Boundaries...)
	}
	return constellation.Merge(constellation.DefaultBoundaries(), c.Boundaries)
}
