package sshconfig

import (
	"strings"
	"unicode"
)

type lineClass int

const (
	classComment lineClass = iota
	classBlank
	classDirective
	classMalformed
)

// classified is the result of classifying one physical line.
type classified struct {
	class lineClass
	key   string
	value string
}

// classifyLine determines what a raw line is. Directive lines are split on
// the first whitespace run into key and value; a line with a key but no
// value is malformed. The caller decides what to do with each class.
func classifyLine(raw string) classified {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "#") {
		return classified{class: classComment}
	}
	if trimmed == "" {
		return classified{class: classBlank}
	}

	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return classified{class: classMalformed}
	}

	return classified{
		class: classDirective,
		key:   trimmed[:i],
		value: strings.TrimSpace(trimmed[i:]),
	}
}

// isHostKey and isIncludeKey match the two structural directives. Only
// these two keys are compared case-insensitively; every other key keeps
// its original casing and is never interpreted.
func isHostKey(key string) bool {
	return strings.EqualFold(key, "Host")
}

func isIncludeKey(key string) bool {
	return strings.EqualFold(key, "Include")
}
