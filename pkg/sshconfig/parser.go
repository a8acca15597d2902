package sshconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads the root configuration file and builds the full document,
// following Include directives recursively. Only the root file's read can
// fail; includes that cannot be resolved or read are skipped silently so a
// broken include degrades the document instead of blocking the load.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	doc := NewDocument()
	doc.visited[canonicalPath(path)] = true
	doc.parseContent(string(data), path)
	return doc, nil
}

// parseContent walks one file's lines in physical order, maintaining the
// usual open-host accumulator: option lines attach to the host opened by
// the most recent Host directive, and any comment, blank line, Host,
// Include, or end-of-file closes it.
func (d *Document) parseContent(content, source string) {
	var open *Line

	flush := func() {
		if open != nil {
			d.Lines = append(d.Lines, open)
			open = nil
		}
	}

	// Split rather than scan: the content is already in memory and a
	// scanner's line-length cap would silently drop the rest of a file.
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, raw := range lines {
		raw = strings.TrimSuffix(raw, "\r")
		num := i + 1

		c := classifyLine(raw)
		switch c.class {
		case classComment:
			flush()
			d.Lines = append(d.Lines, &Line{Kind: LineComment, Text: raw, Source: source})

		case classBlank:
			flush()
			d.Lines = append(d.Lines, &Line{Kind: LineEmpty, Source: source})

		case classMalformed:
			// A key with no value is dropped from the document; record it
			// so callers can surface the loss.
			d.Skipped = append(d.Skipped, SkippedLine{Source: source, Num: num, Text: raw})

		case classDirective:
			switch {
			case isHostKey(c.key):
				flush()
				open = &Line{Kind: LineHost, Pattern: c.value, Source: source}

			case isIncludeKey(c.key):
				flush()
				d.Lines = append(d.Lines, &Line{Kind: LineInclude, IncludePath: c.value, Source: source})
				d.parseInclude(c.value, source)

			default:
				if open != nil {
					open.Options = append(open.Options, Option{Key: c.key, Value: c.value})
				} else {
					d.Lines = append(d.Lines, &Line{Kind: LineGlobalOption, Key: c.key, Value: c.value, Source: source})
				}
			}
		}
	}

	flush()
}

// parseInclude resolves one Include argument and splices each matched
// file's content into the document at the current position. The visited
// set is shared across the whole parse, so a file is parsed at most once
// no matter how many Include chains reach it.
func (d *Document) parseInclude(pattern, source string) {
	for _, path := range ResolveInclude(pattern, filepath.Dir(source)) {
		canon := canonicalPath(path)
		if d.visited[canon] {
			continue
		}
		d.visited[canon] = true

		data, err := os.ReadFile(path) // #nosec G304 -- paths come from the user's own config
		if err != nil {
			// Unreadable include target: skip, keep the directive.
			continue
		}

		d.parseContent(string(data), path)
		d.IncludedFiles[path] = string(data)
	}
}
