//go:build windows

package runner

import (
	"fmt"
	"os"
	"syscall"
)

func terminatingSignal(state *os.ProcessState) (string, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return "", false
	}
	return fmt.Sprintf("signal %d", ws.Signal()), true
}
