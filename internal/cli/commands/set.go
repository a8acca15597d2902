package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SetOptions holds command-line options for the set command.
type SetOptions struct {
	commonOptions
	Append bool
}

// NewSetCommand creates the set command.
func NewSetCommand() *cobra.Command {
	opts := &SetOptions{}

	cmd := &cobra.Command{
		Use:   "set <pattern> <key> <value>",
		Short: "Set an option on a host entry",
		Long: `Set an option on a Host entry and save the configuration.

By default the first existing option with the same key is updated, or a
new one appended. With --append a new option is always appended, allowing
duplicate keys (e.g. multiple IdentityFile lines).

Every file of the configuration is written back; files other than the one
holding the edited host are reproduced unchanged.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, args, opts)
		},
	}

	addCommonFlags(cmd, &opts.commonOptions)
	cmd.Flags().BoolVar(&opts.Append, "append", false, "Append even if the key already exists")
	return cmd
}

func runSet(cmd *cobra.Command, args []string, opts *SetOptions) error {
	pattern, key, value := args[0], args[1], args[2]
	ctx := commandContext(cmd)

	doc, path, _, err := loadDocument(ctx, &opts.commonOptions)
	if err != nil {
		return err
	}

	host := doc.FindHost(pattern)
	if host == nil {
		return fmt.Errorf("no host entry %q in %s", pattern, path)
	}

	if opts.Append {
		host.AddOption(key, value)
	} else {
		host.SetOption(key, value)
	}

	if err := doc.SaveAll(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s %s on host %q (%s)\n", key, value, pattern, host.Source)
	return nil
}
