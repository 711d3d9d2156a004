package adapter

import (
	"bytes"
	"context"
	"time"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// ScorerOutput is the raw result of an external scorer process.
type ScorerOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// ScorerRunnerAdapter runs external scorer programs.
type ScorerRunnerAdapter interface {
	// RunScorer starts command in dir, writes input to its stdin and waits
	// at most timeout for it to finish.
	RunScorer(ctx context.Context, command []string, dir m.Path, input []byte, timeout time.Duration) (ScorerOutput, error)
}

// LocalScorerRunnerAdapter is the os/exec-backed ScorerRunnerAdapter.
type LocalScorerRunnerAdapter struct{}

// NewLocalScorerRunnerAdapter constructs a LocalScorerRunnerAdapter.
func NewLocalScorerRunnerAdapter() *LocalScorerRunnerAdapter {
	return &LocalScorerRunnerAdapter{}
}

// RunScorer implements ScorerRunnerAdapter.
func (a *LocalScorerRunnerAdapter) RunScorer(ctx context.Context, command []string, dir m.Path, input []byte, timeout time.Duration) (ScorerOutput, error) {
	res, err := runCommand(ctx, commandSpec{
		name:    command[0],
		args:    command[1:],
		dir:     string(dir),
		stdin:   bytes.NewReader(input),
		timeout: timeout,
	})
	if err != nil {
		return ScorerOutput{}, err
	}

	return ScorerOutput{
		Stdout:   res.stdout,
		Stderr:   res.stderr,
		ExitCode: res.exitCode,
		TimedOut: res.timedOut,
	}, nil
}
