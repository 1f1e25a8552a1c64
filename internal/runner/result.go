package runner

// Result holds the outcome of one execution.
type Result struct {
	RunID     string // unique identifier for this run
	ExitCode  int    // process exit code, UnknownExitCode when signalled
	Exited    bool   // false if the process was terminated by a signal
	Signal    string // terminating signal, if any
	Stdout    string // captured stdout (may be truncated)
	Trace     string // captured raw stderr (may be truncated)
	Truncated bool   // true if either stream exceeded the read cap
}
