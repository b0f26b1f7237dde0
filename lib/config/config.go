// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads dashboard configuration.
//
// Configuration comes from a single YAML file specified by:
//   - the ORDERDESK_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There are no fallbacks or automatic discovery. A missing file is an
// error; defaults only exist so every field has a sensible zero
// configuration when no file is given at all.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ORDERDESK_CONFIG"

// Config is the dashboard configuration.
type Config struct {
	// UI configures the table view.
	UI UIConfig `yaml:"ui"`

	// Data configures the demo data set the dashboard opens with.
	Data DataConfig `yaml:"data"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// UIConfig configures the table view.
type UIConfig struct {
	// PageSize is how many orders one page shows. Default: 20.
	PageSize int `yaml:"page_size"`

	// MouseEnabled turns on mouse tracking (hover tooltips, click
	// to select, wheel paging). Default: true.
	MouseEnabled bool `yaml:"mouse_enabled"`
}

// DataConfig configures the generated demo data set.
type DataConfig struct {
	// Seed drives the deterministic generator. Default: 1.
	Seed int64 `yaml:"seed"`

	// Count is how many orders to generate. Default: 128.
	Count int `yaml:"count"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Output is a file path for JSON logs. Empty disables logging;
	// the terminal is owned by the UI, so logs never go to stderr
	// while the dashboard runs.
	Output string `yaml:"output"`

	// Level is the minimum level: debug, info, warn, error.
	// Default: info.
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no file is
// provided.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			PageSize:     20,
			MouseEnabled: true,
		},
		Data: DataConfig{
			Seed:  1,
			Count: 128,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the path in ORDERDESK_CONFIG. It
// fails when the variable is unset; callers with a --config flag
// should use LoadFile directly.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your orderdesk.yaml, or use the --config flag", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging it
// over the defaults. The file is the single source of truth;
// environment variables do not override its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.PageSize < 1 {
		errs = append(errs, fmt.Errorf("ui.page_size must be at least 1"))
	}
	if c.Data.Count < 0 {
		errs = append(errs, fmt.Errorf("data.count must not be negative"))
	}
	if !logLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error"))
	}
	return errors.Join(errs...)
}
