// Package tracefilter separates genuine diagnostic output from shell trace
// lines (the ones `set -x` echoes with $PS4 in front).
package tracefilter

import "strings"

const (
	// PrefixEnv names the variable holding the shell's trace prefix.
	PrefixEnv = "PS4"
	// DefaultPrefix is what POSIX shells use when PS4 is unset.
	DefaultPrefix = "+ "
)

// Prefix resolves the trace prefix. A set PS4 wins even when empty; an
// empty value matches every line.
func Prefix(lookup func(string) (string, bool), fallback string) string {
	if lookup != nil {
		if v, ok := lookup(PrefixEnv); ok {
			return v
		}
	}
	if fallback != "" {
		return fallback
	}
	return DefaultPrefix
}

// Lines splits text on '\n'. A trailing newline terminates the last line
// rather than starting an empty one. Carriage returns are kept verbatim.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Filter drops every line starting with prefix and joins the rest with
// single newlines, preserving order.
func Filter(text, prefix string) string {
	lines := Lines(text)
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
