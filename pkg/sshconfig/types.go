// Package sshconfig provides an editable in-memory model of an SSH client
// configuration. A configuration may span a main file plus any number of
// files pulled in through Include directives; every parsed line remembers
// which physical file it came from, so the model can be written back to
// disk file-by-file.
//
// The recognized grammar is the subset an editor needs: comments, blank
// lines, Host blocks, Include directives, and generic "key value" options.
// Quoted values, Match blocks, and multi-value directives are out of scope.
package sshconfig

// LineKind identifies what a parsed Line represents.
type LineKind int

const (
	// LineComment is a '#'-prefixed line, stored verbatim.
	LineComment LineKind = iota
	// LineEmpty is a blank (whitespace-only) line.
	LineEmpty
	// LineInclude is an Include directive with its raw, unexpanded argument.
	LineInclude
	// LineHost is a Host block: a pattern plus its accumulated options.
	LineHost
	// LineGlobalOption is a key/value directive outside any Host block.
	LineGlobalOption
)

// Option is a single key/value pair inside a Host block. Order is
// significant and duplicate keys are allowed.
type Option struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Line is one parsed configuration line. Which fields are meaningful
// depends on Kind; Source is always set to the resolved path of the
// physical file the line was read from.
type Line struct {
	Kind LineKind

	// Text is the verbatim original line, including the leading '#'.
	// Set for LineComment only.
	Text string

	// IncludePath is the raw Include argument, exactly as written.
	// Set for LineInclude only.
	IncludePath string

	// Pattern and Options describe a Host block. Set for LineHost only.
	Pattern string
	Options []Option

	// Key and Value describe a directive outside any Host block.
	// Set for LineGlobalOption only.
	Key   string
	Value string

	// Source is the path of the file this line belongs to. It decides
	// which file the line is written back to on save.
	Source string
}

// SetOption updates the first option with the given key, or appends a new
// one if the key is not present. Key lookup is exact (case-sensitive),
// matching how OpenSSH options are stored here: never normalized.
func (l *Line) SetOption(key, value string) {
	for i := range l.Options {
		if l.Options[i].Key == key {
			l.Options[i].Value = value
			return
		}
	}
	l.Options = append(l.Options, Option{Key: key, Value: value})
}

// AddOption appends an option without touching existing ones, allowing
// duplicate keys (e.g. multiple IdentityFile lines).
func (l *Line) AddOption(key, value string) {
	l.Options = append(l.Options, Option{Key: key, Value: value})
}

// UnsetOption removes every option with the given key and returns how many
// were removed.
func (l *Line) UnsetOption(key string) int {
	kept := l.Options[:0]
	removed := 0
	for _, opt := range l.Options {
		if opt.Key == key {
			removed++
			continue
		}
		kept = append(kept, opt)
	}
	l.Options = kept
	return removed
}

// SkippedLine records a directive line that was dropped during parsing
// because it had no value after the key. Dropped lines are not part of the
// document and will not survive a save; they are tracked so tooling can
// warn about the data loss.
type SkippedLine struct {
	Source string `json:"source" yaml:"source"`
	Num    int    `json:"line" yaml:"line"`
	Text   string `json:"text" yaml:"text"`
}

// Document is the ordered, origin-tagged model of a whole configuration.
// Lines holds every parsed line in encounter order, with included files
// spliced in depth-first at the point of their Include directive.
//
// A Document is built once by Parse and then mutated freely by the caller;
// it is not safe for concurrent use.
type Document struct {
	// Lines is the shared flat sequence all files contribute to.
	Lines []*Line

	// IncludedFiles maps each included file's resolved path to its raw
	// content as read during parsing. The key set drives SaveAll; the
	// content is kept for reference and is not consulted on save.
	IncludedFiles map[string]string

	// Skipped lists directive lines dropped for having no value.
	Skipped []SkippedLine

	// visited tracks canonical paths already parsed, so include cycles
	// terminate and no file contributes lines twice.
	visited map[string]bool
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		IncludedFiles: make(map[string]string),
		visited:       make(map[string]bool),
	}
}

// Hosts returns every Host entry in document order.
func (d *Document) Hosts() []*Line {
	var hosts []*Line
	for _, ln := range d.Lines {
		if ln.Kind == LineHost {
			hosts = append(hosts, ln)
		}
	}
	return hosts
}

// FindHost returns the first Host entry whose pattern matches exactly, or
// nil. Duplicate patterns are legal; later duplicates are reachable via
// Hosts.
func (d *Document) FindHost(pattern string) *Line {
	for _, ln := range d.Lines {
		if ln.Kind == LineHost && ln.Pattern == pattern {
			return ln
		}
	}
	return nil
}

// AddHost appends a new Host entry attributed to the given source file and
// returns it. The source decides which file the entry is written to on
// save; it must be the main file or a file already present in
// IncludedFiles, otherwise the entry is never persisted.
func (d *Document) AddHost(pattern string, options []Option, source string) *Line {
	ln := &Line{
		Kind:    LineHost,
		Pattern: pattern,
		Options: options,
		Source:  source,
	}
	d.Lines = append(d.Lines, ln)
	return ln
}

// RemoveHost deletes the first Host entry with the given pattern and
// reports whether one was found.
func (d *Document) RemoveHost(pattern string) bool {
	for i, ln := range d.Lines {
		if ln.Kind == LineHost && ln.Pattern == pattern {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return true
		}
	}
	return false
}
