// Package config loads command configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Environment variable names
const (
	EnvSeed          = "DUNGEON_SEED"
	EnvRows          = "DUNGEON_ROWS"
	EnvColumns       = "DUNGEON_COLUMNS"
	EnvAddr          = "DUNGEON_ADDR"
	EnvLogVerbosity  = "DUNGEON_LOG_VERBOSITY"
	EnvMaxAttempts   = "DUNGEON_MAX_ATTEMPTS"
	EnvMaxIterations = "DUNGEON_MAX_ITERATIONS"
	EnvColor         = "DUNGEON_COLOR"
)

// Color modes for text output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds generation and command options.
type Config struct {
	// Seed for the random source. The same seed and shape always produce the
	// same layout.
	Seed uint64

	// Area partition
	Rows    int
	Columns int

	// Retry budgets
	MaxSynthesisAttempts int
	MaxConnectIterations int

	Addr         string // Listen address for serve
	LogVerbosity int    // stdr verbosity; 1 logs resampling
	Color        string // auto, always or never
}

// Default returns the built-in configuration.
func Default() Config {
	limits := world.DefaultLimits()
	return Config{
		Seed:                 uint64(0x17291729),
		Rows:                 world.DefaultRows,
		Columns:              world.DefaultColumns,
		MaxSynthesisAttempts: limits.MaxSynthesisAttempts,
		MaxConnectIterations: limits.MaxConnectIterations,
		Addr:                 ":8080",
		Color:                ColorAuto,
	}
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Load returns the defaults overridden by any DUNGEON_* environment variables.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to read variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvColumns, &cfg.Columns},
		{EnvLogVerbosity, &cfg.LogVerbosity},
		{EnvMaxAttempts, &cfg.MaxSynthesisAttempts},
		{EnvMaxIterations, &cfg.MaxConnectIterations},
	}
	for _, i := range ints {
		v, ok := lookup(i.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", i.name, v, err)
		}
		*i.dst = n
	}

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		cfg.Color = v
	}

	return cfg, cfg.Validate()
}

// Validate checks option values that do not depend on generation.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.MaxSynthesisAttempts < 1 {
		return fmt.Errorf("max synthesis attempts must be positive, got %d", c.MaxSynthesisAttempts)
	}
	if c.MaxConnectIterations < 1 {
		return fmt.Errorf("max connect iterations must be positive, got %d", c.MaxConnectIterations)
	}
	return nil
}

// Shape returns the configured area partition.
func (c Config) Shape() world.Shape {
	return world.Shape{Rows: c.Rows, Columns: c.Columns}
}

// Limits returns the configured retry budgets.
func (c Config) Limits() world.Limits {
	return world.Limits{
		MaxSynthesisAttempts: c.MaxSynthesisAttempts,
		MaxConnectIterations: c.MaxConnectIterations,
	}
}
