package config

import (
	"os"
	"path/filepath"
)

// Default values for configuration.
const (
	DefaultConfigPath = "~/.ssh/config"
	DefaultOutput     = "text"
)

// Environment variable names.
const (
	EnvConfigPath = "SSHCONF_CONFIG_PATH"
	EnvOutput     = "SSHCONF_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ConfigPath: DefaultConfigPath,
		Output:     DefaultOutput,
	}
}

// DefaultPath returns the location the tool config is read from when no
// explicit path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sshconf", "config.yaml")
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if path := os.Getenv(EnvConfigPath); path != "" {
		c.ConfigPath = path
	}
	if format := os.Getenv(EnvOutput); format != "" {
		c.Output = format
	}
}
