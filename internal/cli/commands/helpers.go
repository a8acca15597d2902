// Package commands implements the sshconf subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/pkg/config"
	"github.com/sshconf/sshconf/pkg/output"
	"github.com/sshconf/sshconf/pkg/sshconfig"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// commonOptions holds the flags shared by all document-reading commands.
type commonOptions struct {
	ConfigFile string
	Output     string
	Verbose    bool
	Quiet      bool
}

func addCommonFlags(cmd *cobra.Command, opts *commonOptions) {
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "SSH config file (default: tool config, then ~/.ssh/config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show full detail")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadDocument resolves the effective SSH config path and output format
// from flags and the tool configuration, then parses the document. The
// tool config is only consulted for defaults the flags left open, so an
// unreadable tool config never blocks a fully flag-specified command.
func loadDocument(ctx context.Context, opts *commonOptions) (*sshconfig.Document, string, string, error) {
	path := opts.ConfigFile
	format := opts.Output

	if path == "" || format == "" {
		toolCfg, err := config.Load(ctx, "")
		if err != nil {
			return nil, "", "", fmt.Errorf("loading tool config: %w", err)
		}
		if path == "" {
			path = toolCfg.ResolvedConfigPath()
		}
		if format == "" {
			format = toolCfg.Output
		}
	}
	path = config.ExpandUser(path)

	doc, err := sshconfig.Parse(path)
	if err != nil {
		return nil, "", "", err
	}
	return doc, path, format, nil
}

// newFormatter builds the formatter for a command's effective format.
func newFormatter(format string, opts *commonOptions) (output.Formatter, error) {
	return output.NewFormatter(format, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
}

// hostEntry converts a parsed Host line into its report form.
func hostEntry(ln *sshconfig.Line, withOptions bool) output.HostEntry {
	entry := output.HostEntry{
		Pattern:     ln.Pattern,
		Source:      ln.Source,
		OptionCount: len(ln.Options),
	}
	if withOptions {
		entry.Options = ln.Options
	}
	return entry
}
