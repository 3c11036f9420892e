// Package config loads process-wide settings from an optional sinepia.yaml
// file: load/find/validate/defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level sinepia.yaml document.
type Config struct {
	// Fuel is a normalization step budget, zero meaning unbounded. It is
	// parsed and checked to be non-negative; no package in this repository
	// reads it, and the kernel's Normalize runs without any bound.
	Fuel int `yaml:"fuel,omitempty"`

	// UniverseDisplay names a universe display style, "short" or "verbose".
	// Defaults to "short". It is parsed and validated only; universes always
	// print as U0, U1, ... whatever its value.
	UniverseDisplay string `yaml:"universe_display,omitempty"`

	// Prompt is the REPL prompt string. Defaults to "sinepia> ".
	Prompt string `yaml:"prompt,omitempty"`

	// Libs lists axiom-pack archives (see internal/libpack) to load before
	// the REPL starts, in order.
	Libs []string `yaml:"libs,omitempty"`
}

// LoadConfig reads and parses a sinepia.yaml file from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses sinepia.yaml content from bytes. path is used only in
// error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for sinepia.yaml starting from dir and walking up to
// parent directories, the way a .gitignore lookup does. It returns an empty
// path and nil error when no config is found anywhere up to the filesystem
// root — an absent config is not an error, just "use the defaults".
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "sinepia.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		candidate = filepath.Join(dir, "sinepia.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	switch c.UniverseDisplay {
	case "", "short", "verbose":
	default:
		return fmt.Errorf("%s: universe_display must be \"short\" or \"verbose\", got %q", path, c.UniverseDisplay)
	}
	if c.Fuel < 0 {
		return fmt.Errorf("%s: fuel must not be negative, got %d", path, c.Fuel)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.UniverseDisplay == "" {
		c.UniverseDisplay = "short"
	}
	if c.Prompt == "" {
		c.Prompt = "sinepia> "
	}
}
