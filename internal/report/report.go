// Package report renders the Markdown failure report that cron mails out.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Report is everything needed to describe one failed invocation.
type Report struct {
	Program    string
	Args       []string
	ExitCode   int
	Diagnostic string // stderr with trace lines removed
	Stdout     string
	Trace      string // raw stderr
}

// CommandLine is the program followed by its space-joined arguments. The
// separating space is always present, even with no arguments.
func (r Report) CommandLine() string {
	return r.Program + " " + strings.Join(r.Args, " ")
}

// ShowTrace reports whether filtering removed anything worth showing.
func (r Report) ShowTrace() bool {
	return strings.TrimSpace(r.Diagnostic) != strings.TrimSpace(r.Trace)
}

// Render writes r to w in a single write.
func Render(w io.Writer, r Report) error {
	_, err := io.WriteString(w, Format(r))
	return err
}

// Format returns the report text.
func Format(r Report) string {
	var b []byte
	p := func(format string, args ...any) {
		b = fmt.Appendf(b, format, args...)
	}

	p("# Failure or error output for the command:\n")
	p("`%s`\n", r.CommandLine())
	p("\n## Exit-code: %d\n", r.ExitCode)
	p("\n## Err output:\n")
	p("```\n%s\n```\n", r.Diagnostic)
	p("\n## Std output:\n")
	p("```\n%s\n```\n", r.Stdout)

	if r.ShowTrace() {
		p("\n## Trace output:\n")
		p("```\n%s\n```\n", r.Trace)
	}

	return string(b)
}
