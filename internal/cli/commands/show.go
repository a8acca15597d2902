package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/pkg/output"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:   "show <pattern>",
		Short: "Show one host entry",
		Long: `Show a single Host entry and its options in their stored order.
The pattern must match the Host line exactly; with duplicate patterns the
first entry is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], opts)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func runShow(cmd *cobra.Command, pattern string, opts *commonOptions) error {
	ctx := commandContext(cmd)

	doc, path, format, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	host := doc.FindHost(pattern)
	if host == nil {
		return fmt.Errorf("no host entry %q in %s", pattern, path)
	}

	report := &output.Report{
		ConfigFile: path,
		Hosts:      []output.HostEntry{hostEntry(host, true)},
	}

	formatter, err := newFormatter(format, opts)
	if err != nil {
		return err
	}
	return formatter.Format(ctx, report, cmd.OutOrStdout())
}
