package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUnsetCommand creates the unset command.
func NewUnsetCommand() *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:   "unset <pattern> <key>",
		Short: "Remove an option from a host entry",
		Long: `Remove every option with the given key from a Host entry and save
the configuration. Key comparison is exact: option keys are stored with
their original casing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnset(cmd, args[0], args[1], opts)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func runUnset(cmd *cobra.Command, pattern, key string, opts *commonOptions) error {
	ctx := commandContext(cmd)

	doc, path, _, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	host := doc.FindHost(pattern)
	if host == nil {
		return fmt.Errorf("no host entry %q in %s", pattern, path)
	}

	removed := host.UnsetOption(key)
	if removed == 0 {
		return fmt.Errorf("host %q has no option %q", pattern, key)
	}

	if err := doc.SaveAll(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s option(s) from host %q\n", removed, key, pattern)
	return nil
}
