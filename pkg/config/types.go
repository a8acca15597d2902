// Package config provides configuration loading and validation for sshconf.
package config

// Config is the tool configuration loaded from YAML. It configures the CLI
// itself, not the SSH client: the SSH configuration being edited is plain
// OpenSSH config text handled by pkg/sshconfig.
type Config struct {
	// ConfigPath is the default SSH client config file commands operate
	// on when -c is not given. A leading "~/" refers to the user's home
	// directory.
	ConfigPath string `yaml:"config_path"`

	// Output is the default output format: text, json, or yaml.
	Output string `yaml:"output"`
}
