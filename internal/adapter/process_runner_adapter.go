package adapter

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// ErrInvalidArguments is returned when an argument string cannot be tokenized.
var ErrInvalidArguments = errors.New("invalid argument string")

// ProcessRunnerAdapter runs a compiled program once.
type ProcessRunnerAdapter interface {
	// Execute runs the program compiled from programPath with the shell-style
	// tokens of argString. A positive timeout bounds the run; on expiry the
	// outcome is marked TimedOut and its stdout is empty.
	Execute(ctx context.Context, programPath m.Path, argString string, timeout time.Duration) (m.ExecutionOutcome, error)
}

// LocalProcessRunnerAdapter launches `<runtime> <MainClass> args...` with os/exec.
type LocalProcessRunnerAdapter struct {
	runtime string
}

// NewLocalProcessRunnerAdapter constructs a runner using the given runtime
// executable, typically "java".
func NewLocalProcessRunnerAdapter(runtime string) *LocalProcessRunnerAdapter {
	return &LocalProcessRunnerAdapter{runtime: runtime}
}

// Execute runs the program in its own directory and captures its output.
func (a *LocalProcessRunnerAdapter) Execute(ctx context.Context, programPath m.Path, argString string, timeout time.Duration) (m.ExecutionOutcome, error) {
	tokens, err := shlex.Split(strings.TrimSpace(argString))
	if err != nil {
		return m.ExecutionOutcome{}, errors.Wrapf(ErrInvalidArguments, "%q: %v", argString, err)
	}

	path := string(programPath)
	mainClass := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	res, err := runCommand(ctx, commandSpec{
		name:    a.runtime,
		args:    append([]string{mainClass}, tokens...),
		dir:     filepath.Dir(path),
		timeout: timeout,
	})
	if err != nil {
		return m.ExecutionOutcome{}, err
	}

	if res.timedOut {
		return m.ExecutionOutcome{
			Stderr:   TimeoutMessage(timeout),
			Elapsed:  res.elapsed,
			TimedOut: true,
			ExitCode: res.exitCode,
		}, nil
	}

	return m.ExecutionOutcome{
		Stdout:   res.stdout,
		Stderr:   res.stderr,
		Elapsed:  res.elapsed,
		ExitCode: res.exitCode,
	}, nil
}

// TimeoutMessage states the limit in whole seconds, rounding up.
func TimeoutMessage(timeout time.Duration) string {
	seconds := int64(math.Ceil(timeout.Seconds()))

	unit := "seconds"
	if seconds == 1 {
		unit = "second"
	}

	return fmt.Sprintf("Timed out after %d %s.", seconds, unit)
}
