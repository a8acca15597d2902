package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Hosts != nil {
		f.formatHosts(report, w)
	}
	if report.Includes != nil {
		f.formatIncludes(report, w)
	}
	if report.Stats != nil {
		f.formatStats(report, w)
	}
	return nil
}

func (f *TextFormatter) formatHosts(report *Report, w io.Writer) {
	if f.opts.Quiet {
		fmt.Fprintf(w, "%d host(s) in %s\n", len(report.Hosts), report.ConfigFile)
		return
	}

	for _, host := range report.Hosts {
		fmt.Fprintf(w, "Host %s\n", host.Pattern)
		if f.opts.Verbose || host.Options != nil {
			for _, opt := range host.Options {
				fmt.Fprintf(w, "    %s %s\n", opt.Key, opt.Value)
			}
		} else {
			fmt.Fprintf(w, "    %d option(s)\n", host.OptionCount)
		}
		if f.opts.Verbose {
			fmt.Fprintf(w, "    Source: %s\n", host.Source)
		}
	}
	fmt.Fprintf(w, "\n%d host(s) total\n", len(report.Hosts))
}

func (f *TextFormatter) formatIncludes(report *Report, w io.Writer) {
	if len(report.Includes) == 0 {
		fmt.Fprintf(w, "No included files in %s\n", report.ConfigFile)
		return
	}

	fmt.Fprintf(w, "Included files for %s:\n", report.ConfigFile)
	for _, inc := range report.Includes {
		fmt.Fprintf(w, "  %s (%d bytes)\n", inc.Path, inc.Bytes)
	}
}

func (f *TextFormatter) formatStats(report *Report, w io.Writer) {
	s := report.Stats

	fmt.Fprintf(w, "%s: %d host(s), %d global option(s), %d include(s), %d included file(s)\n",
		report.ConfigFile, s.Hosts, s.GlobalOptions, s.Includes, s.IncludedFiles)

	if f.opts.Verbose {
		fmt.Fprintf(w, "  Comments: %d\n", s.Comments)
		fmt.Fprintf(w, "  Empty lines: %d\n", s.EmptyLines)
	}

	for _, skipped := range s.Skipped {
		fmt.Fprintf(w, "Warning: %s:%d: directive %q has no value and will be dropped on save\n",
			skipped.Source, skipped.Num, skipped.Text)
	}
	for _, pattern := range s.DanglingIncludes {
		fmt.Fprintf(w, "Warning: Include %q matches no files\n", pattern)
	}

	if !s.HasFindings() {
		fmt.Fprintln(w, "No issues detected")
	}
}
