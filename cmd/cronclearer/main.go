// Command cronclearer runs a command and prints nothing unless it fails,
// so cron only sends mail when there is something to read.
package main

import (
	"os"

	"github.com/brandonbloom/cronclearer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
