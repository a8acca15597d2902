package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/pkg/output"
	"github.com/sshconf/sshconf/pkg/sshconfig"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse the configuration and report findings",
		Long: `Parse the configuration and report statistics plus anything that
deserves attention:

  - directive lines with no value, which are dropped from the model and
    would be lost on the next save
  - Include directives that currently match no files

Exit codes:
  0 - No findings
  1 - Findings reported
  2 - Configuration or runtime error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func runCheck(cmd *cobra.Command, opts *commonOptions) error {
	ctx := commandContext(cmd)

	doc, path, format, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	stats := &output.Stats{
		IncludedFiles: len(doc.IncludedFiles),
		Skipped:       doc.Skipped,
	}
	for _, ln := range doc.Lines {
		switch ln.Kind {
		case sshconfig.LineHost:
			stats.Hosts++
		case sshconfig.LineGlobalOption:
			stats.GlobalOptions++
		case sshconfig.LineComment:
			stats.Comments++
		case sshconfig.LineEmpty:
			stats.EmptyLines++
		case sshconfig.LineInclude:
			stats.Includes++
			if len(sshconfig.ResolveInclude(ln.IncludePath, filepath.Dir(ln.Source))) == 0 {
				stats.DanglingIncludes = append(stats.DanglingIncludes, ln.IncludePath)
			}
		}
	}

	report := &output.Report{ConfigFile: path, Stats: stats}

	formatter, err := newFormatter(format, opts)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return err
	}

	if stats.HasFindings() {
		ExitCode = 1
	}
	return nil
}
