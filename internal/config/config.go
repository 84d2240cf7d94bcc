// Package config loads rn's optional YAML configuration.
package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents rn configuration options.
type Config struct {
	// Color controls colored output: auto, always, or never
	Color string `yaml:"color"`

	// Exclude lists glob patterns for directory entries the candidate scan
	// ignores (editor swap files, OS metadata and similar noise)
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Color: ColorAuto,
		Exclude: []string{
			".DS_Store",
			"*.swp",
		},
	}
}

// Load loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed or invalid, returns an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply set values from the file, merging with defaults.
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.Exclude != nil {
		cfg.Exclude = fileCfg.Exclude
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration values.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", c.Color)
	}

	for _, pattern := range c.Exclude {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}
