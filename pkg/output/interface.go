package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders a report to a writer.
// Implementations must be safe for sequential use (not concurrent).
type Formatter interface {
	// Name returns the format name.
	Name() string

	// Format renders the report.
	Format(ctx context.Context, report *Report, w io.Writer) error
}

// NewFormatter returns the formatter for the given format name.
func NewFormatter(format string, opts FormatOptions) (Formatter, error) {
	switch format {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "yaml":
		return NewYAMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text, json, or yaml)", format)
	}
}
