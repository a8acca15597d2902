package sshconfig

import "strings"

// optionIndent is the normalized indentation written before every host
// option on save; original indentation is not preserved.
const optionIndent = "    "

// Render reconstructs the textual content of one file from the document.
// It is a pure function over the in-memory state: lines whose Source is
// not target are ignored, and the rest are emitted in document order.
//
// Comments, blank lines, and Include directives round-trip byte-for-byte
// (modulo trailing-newline normalization). Host blocks are re-emitted from
// their current in-memory state: edits are reflected and option
// indentation is normalized.
func (d *Document) Render(target string) string {
	var b strings.Builder

	for _, ln := range d.Lines {
		if ln.Source != target {
			continue
		}

		switch ln.Kind {
		case LineComment:
			b.WriteString(ln.Text)
			b.WriteByte('\n')

		case LineEmpty:
			b.WriteByte('\n')

		case LineInclude:
			b.WriteString("Include ")
			b.WriteString(ln.IncludePath)
			b.WriteByte('\n')

		case LineHost:
			b.WriteString("Host ")
			b.WriteString(ln.Pattern)
			b.WriteByte('\n')
			for _, opt := range ln.Options {
				b.WriteString(optionIndent)
				b.WriteString(opt.Key)
				b.WriteByte(' ')
				b.WriteString(opt.Value)
				b.WriteByte('\n')
			}

		case LineGlobalOption:
			b.WriteString(ln.Key)
			b.WriteByte(' ')
			b.WriteString(ln.Value)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
