// Package output provides formatting for configuration reports.
package output

import "github.com/sshconf/sshconf/pkg/sshconfig"

// Report is the data handed to a formatter. Commands populate the sections
// they care about; formatters render whichever sections are present.
type Report struct {
	// ConfigFile is the main configuration file the report describes.
	ConfigFile string `json:"config_file" yaml:"config_file"`

	// Hosts lists host entries (hosts and show commands).
	Hosts []HostEntry `json:"hosts,omitempty" yaml:"hosts,omitempty"`

	// Includes lists included files (includes command).
	Includes []IncludeEntry `json:"includes,omitempty" yaml:"includes,omitempty"`

	// Stats carries parse statistics and findings (check command).
	Stats *Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// HostEntry describes one Host block.
type HostEntry struct {
	// Pattern is the host pattern as written after the Host keyword.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Source is the file the entry lives in.
	Source string `json:"source" yaml:"source"`

	// OptionCount is the number of options in the block.
	OptionCount int `json:"option_count" yaml:"option_count"`

	// Options holds the block's options in order, when requested.
	Options []sshconfig.Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// IncludeEntry describes one file pulled in via an Include directive.
type IncludeEntry struct {
	// Path is the resolved path of the included file.
	Path string `json:"path" yaml:"path"`

	// Bytes is the size of the raw content read during parsing.
	Bytes int `json:"bytes" yaml:"bytes"`
}

// Stats summarizes a parsed configuration.
type Stats struct {
	Hosts         int `json:"hosts" yaml:"hosts"`
	GlobalOptions int `json:"global_options" yaml:"global_options"`
	Comments      int `json:"comments" yaml:"comments"`
	EmptyLines    int `json:"empty_lines" yaml:"empty_lines"`
	Includes      int `json:"includes" yaml:"includes"`
	IncludedFiles int `json:"included_files" yaml:"included_files"`

	// Skipped lists directive lines dropped during parsing for having no
	// value. These lines will not survive a save.
	Skipped []sshconfig.SkippedLine `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// DanglingIncludes lists Include arguments that currently match no
	// files.
	DanglingIncludes []string `json:"dangling_includes,omitempty" yaml:"dangling_includes,omitempty"`
}

// HasFindings reports whether the stats contain anything a user should
// look at.
func (s *Stats) HasFindings() bool {
	return len(s.Skipped) > 0 || len(s.DanglingIncludes) > 0
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes per-host options and extra detail.
	Verbose bool

	// Quiet reduces output to summaries.
	Quiet bool
}
