package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/pkg/output"
)

// NewIncludesCommand creates the includes command.
func NewIncludesCommand() *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:   "includes",
		Short: "List included files",
		Long: `List every file pulled into the configuration through Include
directives, after glob and ~ expansion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncludes(cmd, opts)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func runIncludes(cmd *cobra.Command, opts *commonOptions) error {
	ctx := commandContext(cmd)

	doc, path, format, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	report := &output.Report{
		ConfigFile: path,
		Includes:   []output.IncludeEntry{},
	}
	for included, content := range doc.IncludedFiles {
		report.Includes = append(report.Includes, output.IncludeEntry{
			Path:  included,
			Bytes: len(content),
		})
	}
	sort.Slice(report.Includes, func(i, j int) bool {
		return report.Includes[i].Path < report.Includes[j].Path
	})

	formatter, err := newFormatter(format, opts)
	if err != nil {
		return err
	}
	return formatter.Format(ctx, report, cmd.OutOrStdout())
}
