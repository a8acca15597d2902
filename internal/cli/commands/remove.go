package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand() *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:   "remove <pattern>",
		Short: "Remove a host entry",
		Long: `Delete a Host entry and save the configuration. With duplicate
patterns only the first entry is removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], opts)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func runRemove(cmd *cobra.Command, pattern string, opts *commonOptions) error {
	ctx := commandContext(cmd)

	doc, path, _, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	if !doc.RemoveHost(pattern) {
		return fmt.Errorf("no host entry %q in %s", pattern, path)
	}

	if err := doc.SaveAll(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed host %q\n", pattern)
	return nil
}
