// Package cli provides the command-line interface for sshconf.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sshconf",
		Short: "Inspect and edit SSH client configuration",
		Long: `sshconf maintains an editable model of an SSH client configuration.

It parses the main config file plus every file reachable through Include
directives (globs and ~ expansion supported), lets you list and edit Host
entries, and writes each file back to where it came from. Comments, blank
lines, and Include directives are preserved verbatim; host option
indentation is normalized to four spaces on save.

Exit codes:
  0 - Success
  1 - Findings reported (check)
  2 - Usage, configuration, or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.NewHostsCommand(),
		commands.NewShowCommand(),
		commands.NewSetCommand(),
		commands.NewUnsetCommand(),
		commands.NewAddCommand(),
		commands.NewRemoveCommand(),
		commands.NewIncludesCommand(),
		commands.NewCheckCommand(),
		commands.NewFmtCommand(),
		commands.NewVersionCommand(),
	)

	return rootCmd
}
