package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// errorPrefix labels wrapper-level errors, in red when w is a terminal and
// NO_COLOR is unset.
func errorPrefix(w io.Writer, lookup func(string) (string, bool)) string {
	c := color.New(color.FgHiRed, color.Bold)
	if _, noColor := lookup("NO_COLOR"); isTerminal(w) && !noColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(programName + ":")
}
