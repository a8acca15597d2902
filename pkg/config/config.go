package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the tool configuration. An empty path means the
// default location; a missing file there is not an error and yields the
// defaults (plus environment overrides). An explicitly given path must
// exist.
func Load(_ context.Context, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			cfg.applyEnvironmentOverrides()
			return cfg, Validate(cfg)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.ConfigPath == "" {
		return errors.New("config_path: must not be empty")
	}

	switch cfg.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output: invalid format %q (must be text, json, or yaml)", cfg.Output)
	}

	return nil
}

// ResolvedConfigPath returns ConfigPath with a leading "~/" expanded to the
// user's home directory.
func (c *Config) ResolvedConfigPath() string {
	return ExpandUser(c.ConfigPath)
}

// ExpandUser replaces a leading "~/" in path with the user's home
// directory. Any other path is returned unchanged.
func ExpandUser(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
