package sshconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveInclude expands an Include argument into the existing regular
// files it refers to. Resolution steps, in order: a leading "~/" is
// replaced with the user's home directory, a relative path is joined onto
// baseDir (the including file's directory, not the working directory), and
// the result is treated as a glob pattern. Matches that are not regular
// files are skipped.
//
// A pattern matching nothing returns an empty slice, not an error: a
// dangling Include is not fatal. If the glob pattern itself is malformed,
// the resolved path is tried as a single literal file instead.
func ResolveInclude(raw string, baseDir string) []string {
	pattern := raw
	if strings.HasPrefix(pattern, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			pattern = filepath.Join(home, pattern[2:])
		}
	}
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(baseDir, pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		// Malformed glob: fall back to the literal path.
		if isRegularFile(pattern) {
			return []string{pattern}
		}
		return nil
	}

	var files []string
	for _, match := range matches {
		if isRegularFile(match) {
			files = append(files, match)
		}
	}
	return files
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// canonicalPath resolves symlinks and relative segments so the same
// physical file is always identified by one string during cycle
// detection. Canonicalization is best-effort: if the filesystem lookup
// fails (e.g. a broken symlink) the literal absolute path is used instead.
func canonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
