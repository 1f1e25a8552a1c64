package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type usageOption struct {
	flags string
	help  string
}

var usageOptions = []usageOption{
	{"-h, --help", "Show this usage information."},
	{"-i, --ignore-text", "React only on exit-code, not on text on stderr."},
	{"-s, --stdout", "React on exit-code, or on text on stdout."},
	{"-V, --version", "Show the version of " + programName + "."},
	{"    --config PATH", "Read settings from PATH instead of the default config file."},
	{"    --verbose", "Log each step to stderr."},
}

func usageText() string {
	width := 0
	for _, opt := range usageOptions {
		width = max(width, runewidth.StringWidth(opt.flags))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [-ishV] <command> [args...]\n", programName)
	b.WriteString("\nOptions:\n")
	for _, opt := range usageOptions {
		fmt.Fprintf(&b, "    %s  %s\n", runewidth.FillRight(opt.flags, width), opt.help)
	}
	b.WriteString("\nOptions must precede <command>; everything after it is passed to the command unchanged.\n")
	return b.String()
}

func writeUsage(w io.Writer) error {
	_, err := io.WriteString(w, usageText())
	return err
}
