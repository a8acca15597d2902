package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sshconf/sshconf/pkg/config"
	"github.com/sshconf/sshconf/pkg/sshconfig"
)

// AddOptions holds command-line options for the add command.
type AddOptions struct {
	commonOptions
	Target  string
	Options []string
}

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	opts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <pattern>",
		Short: "Add a new host entry",
		Long: `Append a new Host entry and save the configuration.

The entry is attributed to the main config file unless --target names one
of the files already included by the configuration; the entry is then
written into that file on save. Options are given as --option "Key Value"
and keep the order they are passed in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], opts)
		},
	}

	addCommonFlags(cmd, &opts.commonOptions)
	cmd.Flags().StringVar(&opts.Target, "target", "", "File to write the entry to (default: main config file)")
	cmd.Flags().StringArrayVar(&opts.Options, "option", nil, `Option as "Key Value" (can be repeated)`)
	return cmd
}

func runAdd(cmd *cobra.Command, pattern string, opts *AddOptions) error {
	ctx := commandContext(cmd)

	doc, path, _, err := loadDocument(ctx, &opts.commonOptions)
	if err != nil {
		return err
	}

	target := path
	if opts.Target != "" {
		target = config.ExpandUser(opts.Target)
		if target != path {
			if _, ok := doc.IncludedFiles[target]; !ok {
				return fmt.Errorf("target %s is not the main config file or one of its includes", target)
			}
		}
	}

	options, err := parseOptionArgs(opts.Options)
	if err != nil {
		return err
	}

	doc.AddHost(pattern, options, target)

	if err := doc.SaveAll(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added host %q to %s\n", pattern, target)
	return nil
}

// parseOptionArgs splits each "Key Value" argument on the first space.
func parseOptionArgs(args []string) ([]sshconfig.Option, error) {
	var options []sshconfig.Option
	for _, arg := range args {
		key, value, ok := strings.Cut(strings.TrimSpace(arg), " ")
		if !ok || value == "" {
			return nil, fmt.Errorf("invalid option %q (expected \"Key Value\")", arg)
		}
		options = append(options, sshconfig.Option{Key: key, Value: strings.TrimSpace(value)})
	}
	return options, nil
}
