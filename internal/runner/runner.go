// Package runner executes the wrapped command with its output redirected
// into a capture area.
package runner

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/brandonbloom/cronclearer/internal/capture"
	"github.com/google/uuid"
)

// DefaultMaxCapture bounds how much of each stream is read back.
const DefaultMaxCapture = 128 * 1024

// UnknownExitCode stands in for the exit status of a signalled process.
const UnknownExitCode = -1

// Invocation is the program and its arguments, run without a shell.
type Invocation struct {
	Program string
	Args    []string
}

// Runner runs one invocation to completion.
type Runner struct {
	MaxCapture int // bytes per stream; <= 0 means DefaultMaxCapture
}

// Run spawns inv with stdout bound to area.Stdout and stderr bound to
// area.Trace, then blocks until it exits. A command that runs and fails is
// not an error; failing to start it is.
func (r *Runner) Run(inv Invocation, area *capture.Area) (*Result, error) {
	if inv.Program == "" {
		return nil, errors.New("empty program")
	}

	stdout, err := capture.Create(area.Stdout)
	if err != nil {
		return nil, err
	}
	defer stdout.Close()
	stderr, err := capture.Create(area.Trace)
	if err != nil {
		return nil, err
	}
	defer stderr.Close()

	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	res := &Result{
		RunID:    uuid.NewString(),
		ExitCode: 0,
		Exited:   true,
	}

	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("executing %s: %w", inv.Program, runErr)
		}
		res.ExitCode = exitErr.ExitCode()
		res.Exited = exitErr.Exited()
	}
	if sig, ok := terminatingSignal(cmd.ProcessState); ok {
		res.Signal = sig
		res.Exited = false
	}
	if !res.Exited {
		res.ExitCode = UnknownExitCode
	}

	limit := r.maxCapture()
	var outTrunc, errTrunc bool
	if res.Stdout, outTrunc, err = capture.ReadCapped(area.Stdout, limit); err != nil {
		return nil, err
	}
	if res.Trace, errTrunc, err = capture.ReadCapped(area.Trace, limit); err != nil {
		return nil, err
	}
	res.Truncated = outTrunc || errTrunc

	return res, nil
}

func (r *Runner) maxCapture() int {
	if r == nil || r.MaxCapture <= 0 {
		return DefaultMaxCapture
	}
	return r.MaxCapture
}
