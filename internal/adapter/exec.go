package adapter

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// ErrToolNotFound is returned when an external executable cannot be started
// because it does not exist.
var ErrToolNotFound = errors.New("executable not found")

// defaultWaitDelay bounds how long Wait keeps draining output pipes after the
// process was killed or exited. A grandchild holding the pipes open must not
// keep the grader blocked.
const defaultWaitDelay = 500 * time.Millisecond

type commandSpec struct {
	name    string
	args    []string
	dir     string
	stdin   io.Reader
	timeout time.Duration
}

type commandResult struct {
	stdout   string
	stderr   string
	exitCode int
	elapsed  time.Duration
	timedOut bool
}

// runCommand starts spec, waits for it and captures both output streams.
// A positive timeout kills the process on expiry; the process is always
// reaped before runCommand returns. Non-zero exits are reported through the
// result, not as errors.
func runCommand(ctx context.Context, spec commandSpec) (commandResult, error) {
	runCtx := ctx

	if spec.timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, spec.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, spec.name, spec.args...)
	cmd.Dir = spec.dir
	cmd.Stdin = spec.stdin
	cmd.WaitDelay = defaultWaitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	result := commandResult{
		stdout:  stdout.String(),
		stderr:  stderr.String(),
		elapsed: time.Since(start),
	}

	slog.Debug("command finished", "name", spec.name, "args", spec.args, "dir", spec.dir, "elapsed", result.elapsed, "error", err)

	if spec.timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		result.timedOut = true
		result.exitCode = -1

		return result, nil
	}

	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.exitCode = exitErr.ExitCode()
		return result, nil
	}

	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil {
		result.exitCode = cmd.ProcessState.ExitCode()
		return result, nil
	}

	if errors.Is(err, exec.ErrNotFound) || isMissingExecutable(err, cmd.Path) {
		return result, errors.Wrapf(ErrToolNotFound, "%s", spec.name)
	}

	return result, errors.Wrapf(err, "failed to run %s", spec.name)
}

// isMissingExecutable reports whether err says the executable itself does
// not exist. A missing working directory fails on a different path.
func isMissingExecutable(err error, path string) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && pathErr.Path == path && errors.Is(pathErr.Err, fs.ErrNotExist)
}
