package model

import "time"

// ExecutionOutcome is the result of running a compiled program once.
type ExecutionOutcome struct {
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
	TimedOut bool
	ExitCode int
}

// Failed reports whether the run crashed, exited non-zero or timed out.
func (o ExecutionOutcome) Failed() bool {
	return o.TimedOut || o.ExitCode != 0
}
