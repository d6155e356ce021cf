// SPDX-License-Identifier: MIT

// Package config holds the nexus command-line configuration: logging, session
// sizes, grid limits and output preferences. Values come from a YAML file, then
// NEXUS_* environment variables, then command-line flags.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixnexus/converters"
	"github.com/katalvlaran/matrixnexus/session"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "nexus.yaml"

// Config is the root configuration document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	History HistoryConfig `yaml:"history"`
	Stats   StatsConfig   `yaml:"stats"`
	Grid    GridConfig    `yaml:"grid"`
	Output  OutputConfig  `yaml:"output"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// HistoryConfig sizes the session history.
type HistoryConfig struct {
	Size int `yaml:"size"`
}

// StatsConfig sizes the timing window.
type StatsConfig struct {
	Window int `yaml:"window"`
}

// GridConfig bounds hand-built grids and supplies the scalar used when none is given.
type GridConfig struct {
	MinDim        int     `yaml:"min_dim"`
	MaxDim        int     `yaml:"max_dim"`
	DefaultScalar float64 `yaml:"default_scalar"`
}

// OutputConfig controls how results are printed and exported.
type OutputConfig struct {
	Decimals   int    `yaml:"decimals"`
	ExportName string `yaml:"export_name"`
}

// ValidLogLevels and ValidLogFormats list accepted values.
var (
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"console", "json"}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{Size: session.DefaultHistorySize},
		Stats:   StatsConfig{Window: session.DefaultTimingWindow},
		Grid: GridConfig{
			MinDim:        session.DefaultMinDim,
			MaxDim:        session.DefaultMaxDim,
			DefaultScalar: 2,
		},
		Output: OutputConfig{
			Decimals:   converters.DefaultDecimals,
			ExportName: converters.DefaultExportName,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("NEXUS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("NEXUS_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
	if size := os.Getenv("NEXUS_HISTORY_SIZE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("invalid NEXUS_HISTORY_SIZE %q: %w", size, err)
		}
		c.History.Size = n
	}

	return nil
}

// Limits returns the grid bounds as a session policy.
func (c *Config) Limits() session.Limits {
	return session.Limits{MinDim: c.Grid.MinDim, MaxDim: c.Grid.MaxDim}
}

// SessionOptions translates the sizes into session options. Call Validate first.
func (c *Config) SessionOptions() []session.Option {
	return []session.Option{
		session.WithHistorySize(c.History.Size),
		session.WithTimingWindow(c.Stats.Window),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Log.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Log.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Log.Format, ValidLogFormats)
	}
	if c.History.Size <= 0 {
		return fmt.Errorf("history size must be positive, got %d", c.History.Size)
	}
	if c.Stats.Window <= 0 {
		return fmt.Errorf("stats window must be positive, got %d", c.Stats.Window)
	}
	if err := c.Limits().Check(); err != nil {
		return err
	}
	if math.IsNaN(c.Grid.DefaultScalar) || math.IsInf(c.Grid.DefaultScalar, 0) {
		return fmt.Errorf("grid default_scalar must be finite, got %v", c.Grid.DefaultScalar)
	}
	if c.Output.Decimals < 0 || c.Output.Decimals > 15 {
		return fmt.Errorf("output decimals must be within 0..15, got %d", c.Output.Decimals)
	}
	if c.Output.ExportName == "" {
		return fmt.Errorf("output export_name must not be empty")
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
