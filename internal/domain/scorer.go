package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

// Scorer kinds accepted in a suite file.
const (
	ScorerExact      = "exact"
	ScorerNormalized = "normalized"
	ScorerContains   = "contains"
	ScorerCommand    = "command"
)

const (
	feedbackMatch    = "Outputs match exactly."
	feedbackMismatch = "Outputs do not match."
)

// DefaultScorerTimeout bounds a command scorer that sets no timeout.
const DefaultScorerTimeout = 10 * time.Second

// ScorerFunc is the plain function form of a scorer.
type ScorerFunc func(ctx context.Context, studentOutput, referenceOutput string) (m.ScoreResult, error)

type funcScorer struct {
	name string
	fn   ScorerFunc
}

// NewFuncScorer wraps fn as a named Scorer.
func NewFuncScorer(name string, fn ScorerFunc) m.Scorer {
	return &funcScorer{name: name, fn: fn}
}

func (s *funcScorer) Name() string { return s.name }

func (s *funcScorer) Score(ctx context.Context, studentOutput, referenceOutput string) (m.ScoreResult, error) {
	return s.fn(ctx, studentOutput, referenceOutput)
}

// ExactScorer gives full credit when the outputs are byte-for-byte equal.
type ExactScorer struct{}

// Name implements m.Scorer.
func (ExactScorer) Name() string { return ScorerExact }

// Score implements m.Scorer.
func (ExactScorer) Score(_ context.Context, studentOutput, referenceOutput string) (m.ScoreResult, error) {
	if studentOutput == referenceOutput {
		return m.ScoreResult{Percentage: 1, Feedback: feedbackMatch}, nil
	}

	return m.ScoreResult{Percentage: 0, Feedback: feedbackMismatch}, nil
}

// NormalizedScorer compares outputs after dropping trailing whitespace on
// every line and blank lines around the whole output.
type NormalizedScorer struct{}

// Name implements m.Scorer.
func (NormalizedScorer) Name() string { return ScorerNormalized }

// Score implements m.Scorer.
func (NormalizedScorer) Score(_ context.Context, studentOutput, referenceOutput string) (m.ScoreResult, error) {
	if normalizeOutput(studentOutput) == normalizeOutput(referenceOutput) {
		return m.ScoreResult{Percentage: 1, Feedback: "Outputs match."}, nil
	}

	return m.ScoreResult{Percentage: 0, Feedback: feedbackMismatch}, nil
}

func normalizeOutput(output string) string {
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// ContainsScorer looks for a fixed phrase in the student output.
type ContainsScorer struct {
	Substring  string
	IgnoreCase bool
	Hit        m.ScoreResult
	Miss       m.ScoreResult
}

// Name implements m.Scorer.
func (s *ContainsScorer) Name() string {
	return fmt.Sprintf("%s(%q)", ScorerContains, s.Substring)
}

// Score implements m.Scorer.
func (s *ContainsScorer) Score(_ context.Context, studentOutput, _ string) (m.ScoreResult, error) {
	haystack, needle := studentOutput, s.Substring
	if s.IgnoreCase {
		haystack, needle = strings.ToLower(haystack), strings.ToLower(needle)
	}

	if strings.Contains(haystack, needle) {
		return s.Hit, nil
	}

	return s.Miss, nil
}

// CommandScorer delegates scoring to an external program. The program reads
// {"student_output": ..., "reference_output": ...} from stdin and prints a
// JSON array [score, "feedback"].
type CommandScorer struct {
	Command []string
	Dir     m.Path
	Timeout time.Duration

	runner adapter.ScorerRunnerAdapter
}

// NewCommandScorer constructs a CommandScorer. A zero timeout selects DefaultScorerTimeout.
func NewCommandScorer(runner adapter.ScorerRunnerAdapter, command []string, dir m.Path, timeout time.Duration) *CommandScorer {
	if timeout <= 0 {
		timeout = DefaultScorerTimeout
	}

	return &CommandScorer{Command: command, Dir: dir, Timeout: timeout, runner: runner}
}

// Name implements m.Scorer.
func (s *CommandScorer) Name() string {
	return fmt.Sprintf("%s(%q)", ScorerCommand, strings.Join(s.Command, " "))
}

type scorerInput struct {
	StudentOutput   string `json:"student_output"`
	ReferenceOutput string `json:"reference_output"`
}

// Score implements m.Scorer.
func (s *CommandScorer) Score(ctx context.Context, studentOutput, referenceOutput string) (m.ScoreResult, error) {
	input, err := json.Marshal(scorerInput{StudentOutput: studentOutput, ReferenceOutput: referenceOutput})
	if err != nil {
		return m.ScoreResult{}, fmt.Errorf("encode scorer input: %w", err)
	}

	out, err := s.runner.RunScorer(ctx, s.Command, s.Dir, input, s.Timeout)
	if err != nil {
		return m.ScoreResult{}, wrapConfigError(err, "The scorer %s could not be run", s.Name())
	}

	if out.TimedOut {
		return m.ScoreResult{}, configErrorf("The scorer %s did not finish within %s.", s.Name(), s.Timeout)
	}

	if out.ExitCode != 0 {
		return m.ScoreResult{}, configErrorf("The scorer %s exited with status %d:\n\n%s", s.Name(), out.ExitCode, out.Stderr)
	}

	return parseScorerOutput(s.Name(), out.Stdout)
}

// parseScorerOutput checks the shape of a [score, "feedback"] pair. The
// score range is checked by the diff evaluator for every scorer kind.
func parseScorerOutput(name, stdout string) (m.ScoreResult, error) {
	var raw any
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &raw); err != nil {
		return m.ScoreResult{}, configErrorf("The scorer %s must print a JSON array [score, feedback], got %q.", name, stdout)
	}

	pair, ok := raw.([]any)
	if !ok {
		return m.ScoreResult{}, configErrorf("The scorer %s must return a list.", name)
	}

	if len(pair) != 2 {
		return m.ScoreResult{}, configErrorf("The scorer %s must return exactly 2 elements.", name)
	}

	score, ok := pair[0].(float64)
	if !ok {
		return m.ScoreResult{}, configErrorf("The scorer %s must return a numeric score percentage.", name)
	}

	feedback, ok := pair[1].(string)
	if !ok {
		return m.ScoreResult{}, configErrorf("The scorer %s must return feedback as a string.", name)
	}

	return m.ScoreResult{Percentage: score, Feedback: feedback}, nil
}
