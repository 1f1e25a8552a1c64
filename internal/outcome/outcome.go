// Package outcome decides whether a finished command deserves a report.
package outcome

import "strings"

// Verdict is the classification of one invocation.
type Verdict int

const (
	Pass Verdict = iota
	Fail
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// Policy selects which kinds of output count as failure in addition to a
// non-zero exit.
type Policy struct {
	FailOnDiagnosticText bool
	FailOnStdoutText     bool
}

// DefaultPolicy fails on stderr text but tolerates stdout.
func DefaultPolicy() Policy {
	return Policy{FailOnDiagnosticText: true}
}

// Input is what the classifier looks at. Diagnostic is stderr with trace
// lines already removed. Exited is false when the process died by signal.
type Input struct {
	ExitCode   int
	Exited     bool
	Diagnostic string
	Stdout     string
}

// Classify reports Fail when the exit is abnormal or non-zero, or when the
// policy forbids the captured text.
func Classify(in Input, p Policy) Verdict {
	if !in.Exited || in.ExitCode != 0 {
		return Fail
	}
	if p.FailOnDiagnosticText && strings.TrimSpace(in.Diagnostic) != "" {
		return Fail
	}
	if p.FailOnStdoutText && strings.TrimSpace(in.Stdout) != "" {
		return Fail
	}
	return Pass
}
