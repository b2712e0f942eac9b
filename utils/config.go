package utils

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/model"
)

const (
	minGridSize = 3
	maxGridSize = 1000
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run. Values come from
// DefaultConfig, then an optional JSON file, then LIFEBOARD_* environment
// variables.
type Config struct {
	GridSize       int    `json:"grid_size"       env:"LIFEBOARD_GRID_SIZE"`
	SpeedMs        int    `json:"speed_ms"        env:"LIFEBOARD_SPEED_MS"`
	Boundary       string `json:"boundary"        env:"LIFEBOARD_BOUNDARY"`
	CatalogPath    string `json:"catalog_path"    env:"LIFEBOARD_CATALOG"`
	MaxGenerations int    `json:"max_generations" env:"LIFEBOARD_MAX_GENERATIONS"`
	HistorySize    int    `json:"history_size"    env:"LIFEBOARD_HISTORY_SIZE"`
	UseMemoryPool  bool   `json:"use_memory_pool" env:"LIFEBOARD_USE_MEMORY_POOL"`
	Render         bool   `json:"render"          env:"LIFEBOARD_RENDER"`
	LogLevel       string `json:"log_level"       env:"LIFEBOARD_LOG_LEVEL"`
	LogFormat      string `json:"log_format"      env:"LIFEBOARD_LOG_FORMAT"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		GridSize:       50,
		SpeedMs:        100,
		Boundary:       model.Toroidal.String(),
		MaxGenerations: 200,
		HistorySize:    5,
		UseMemoryPool:  true,
		Render:         true,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Speed returns the tick interval
func (c Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// BoundaryMode parses the configured boundary name
func (c Config) BoundaryMode() (model.BoundaryMode, error) {
	return model.ParseBoundaryMode(c.Boundary)
}

// Validate checks every field and reports the first problem found
func (c Config) Validate() error {
	if c.GridSize < minGridSize || c.GridSize > maxGridSize {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid_size %d outside [%d, %d]",
			c.GridSize, minGridSize, maxGridSize)
	}
	if c.SpeedMs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] speed_ms must be positive, got %d", c.SpeedMs)
	}
	if _, err := c.BoundaryMode(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] %v", err)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative")
	}
	if c.HistorySize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_size must not be negative")
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] log_format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

// LoadConfig layers DefaultConfig, the JSON file at filename (skipped when
// empty) and LIFEBOARD_* variables from environment. A nil environment reads
// the process environment. The result is not validated: callers layer flags
// on top and call Validate last.
func LoadConfig(filename string, environment map[string]string) (Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err := applyEnv(&config, environment); err != nil {
		return config, errors.Wrap(err, "[LoadConfig]")
	}
	return config, nil
}

// applyEnv overrides fields of config with any LIFEBOARD_* variables that are
// set. Unset variables leave the current value alone.
func applyEnv(config *Config, environment map[string]string) error {
	if err := env.ParseWithOptions(config, env.Options{Environment: environment}); err != nil {
		return errors.Wrap(err, "[applyEnv] failed to parse environment")
	}
	return nil
}
