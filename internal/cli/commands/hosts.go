package commands

import (
	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/pkg/output"
)

// NewHostsCommand creates the hosts command.
func NewHostsCommand() *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "List host entries",
		Long: `List every Host entry in the configuration, in document order,
including entries contributed by Include'd files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHosts(cmd, opts)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func runHosts(cmd *cobra.Command, opts *commonOptions) error {
	ctx := commandContext(cmd)

	doc, path, format, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	report := &output.Report{
		ConfigFile: path,
		Hosts:      []output.HostEntry{},
	}
	for _, ln := range doc.Hosts() {
		report.Hosts = append(report.Hosts, hostEntry(ln, opts.Verbose))
	}

	formatter, err := newFormatter(format, opts)
	if err != nil {
		return err
	}
	return formatter.Format(ctx, report, cmd.OutOrStdout())
}
