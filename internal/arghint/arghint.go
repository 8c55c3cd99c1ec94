// Package arghint computes the positional argument counts a command accepts from its usage text.
//
// The usage text holds one alternative per line, each a whitespace-separated list of
// placeholders:
//
//	SRC DEST
//	SRC... DIR
//
// A command accepts n positionals when n equals the number of placeholders of at least one
// line. An empty line accepts zero positionals and an empty text accepts any count.
//
// When parsed with variadic set, a line holding a placeholder ending in "..." also accepts
// more positionals than it has placeholders.
package arghint

import (
	"strings"
)

const variadicSuffix = "..."

type alternative struct {
	count    int
	variadic bool
}

// Hint is the parsed form of a usage text
type Hint struct {
	any          bool
	alternatives []alternative
}

// Parse computes the hint of text
func Parse(text string, variadic bool) Hint {
	if text == "" {
		return Hint{any: true}
	}

	var h Hint
	for _, line := range strings.Split(text, "\n") {
		var alt alternative
		for _, field := range strings.Fields(line) {
			alt.count++
			if variadic && strings.HasSuffix(field, variadicSuffix) {
				alt.variadic = true
			}
		}
		h.alternatives = append(h.alternatives, alt)
	}

	return h
}

// Validate reports whether count positionals are accepted
func (h Hint) Validate(count int) bool {
	if h.any {
		return true
	}
	for _, alt := range h.alternatives {
		if count == alt.count || (alt.variadic && count > alt.count) {
			return true
		}
	}

	return false
}
