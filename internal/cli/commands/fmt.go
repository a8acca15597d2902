package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// FmtOptions holds command-line options for the fmt command.
type FmtOptions struct {
	commonOptions
	Stdout bool
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the configuration in normalized form",
		Long: `Parse the configuration and write every file back. Comments, blank
lines, and Include directives are reproduced verbatim; host option
indentation is normalized to four spaces.

With --stdout the rendered main file is printed instead of writing
anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, opts)
		},
	}

	addCommonFlags(cmd, &opts.commonOptions)
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the rendered main file instead of writing")
	return cmd
}

func runFmt(cmd *cobra.Command, opts *FmtOptions) error {
	ctx := commandContext(cmd)

	doc, path, _, err := loadDocument(ctx, &opts.commonOptions)
	if err != nil {
		return err
	}

	if opts.Stdout {
		fmt.Fprint(cmd.OutOrStdout(), doc.Render(path))
		return nil
	}

	if err := doc.SaveAll(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	files := 1 + len(doc.IncludedFiles)
	fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %d file(s)\n", files)
	return nil
}
