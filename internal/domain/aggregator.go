package domain

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

const (
	hiddenOutputSection = "Output:\n\nYour program output is hidden."
	unnamedTest         = "<no name>"
)

// AggregateArgs describes one pass over the configured tests.
type AggregateArgs struct {
	Tests      []m.TestCase
	Reference  m.Path
	Submission m.Path
	// DefaultTimeout applies to tests without their own timeout. Zero means none.
	DefaultTimeout time.Duration
	ExtraData      bool
	// OnResult, when set, is called after each test is scored.
	OnResult func(index int, result m.TestResult)
}

// Aggregator runs every test against both programs and turns the outcomes
// into report entries.
type Aggregator interface {
	// Run executes the tests in order and returns the summed submission run
	// time with one result per test. A failing reference run aborts with a
	// ConfigurationError; a failing submission run only marks its test.
	Run(ctx context.Context, args AggregateArgs) (time.Duration, []m.TestResult, error)
}

type aggregator struct {
	runner    adapter.ProcessRunnerAdapter
	evaluator DiffEvaluator
}

// NewAggregator constructs an Aggregator.
func NewAggregator(runner adapter.ProcessRunnerAdapter, evaluator DiffEvaluator) Aggregator {
	return &aggregator{runner: runner, evaluator: evaluator}
}

func (a *aggregator) Run(ctx context.Context, args AggregateArgs) (time.Duration, []m.TestResult, error) {
	var elapsed time.Duration

	results := make([]m.TestResult, 0, len(args.Tests))

	for i, test := range args.Tests {
		opts := test.Options()

		reference, err := a.runner.Execute(ctx, args.Reference, test.Args(), 0)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return elapsed, results, ctxErr
			}

			return elapsed, results, referenceFailure(i, opts.Name, err.Error())
		}

		if reference.Failed() {
			return elapsed, results, referenceFailure(i, opts.Name, errorText(reference))
		}

		timeout := opts.Timeout
		if timeout == 0 {
			timeout = args.DefaultTimeout
		}

		submission, err := a.runner.Execute(ctx, args.Submission, test.Args(), timeout)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return elapsed, results, ctxErr
			}

			return elapsed, results, wrapConfigError(err, "The submission could not be run on test (%d) %q", i, displayName(opts.Name))
		}

		elapsed += submission.Elapsed

		result, err := a.score(ctx, test, reference, submission, args.ExtraData)
		if err != nil {
			slog.Error("Failed to score test", "index", i, "name", opts.Name, "error", err)
			return elapsed, results, err
		}

		slog.Debug("Test scored", "index", i, "name", opts.Name, "status", result.Status, "score", result.Score, "elapsed", submission.Elapsed)

		results = append(results, result)

		if args.OnResult != nil {
			args.OnResult(i, result)
		}
	}

	return elapsed, results, nil
}

func (a *aggregator) score(ctx context.Context, test m.TestCase, reference, submission m.ExecutionOutcome, extraData bool) (m.TestResult, error) {
	result := newTestResult(test.Options())

	if extraData {
		result.ExtraData = &m.ExtraData{
			ReferenceOutput: reference.Stdout,
			StudentOutput:   submission.Stdout,
		}
	}

	var sections []string
	if submission.Stdout != "" {
		sections = append(sections, hiddenOutputSection)
	}

	if submission.Failed() {
		result.Status = m.StatusError
		result.Output = strings.Join(append(sections, "Basic Error Information:\n\n"+errorSummary(submission)), "\n\n")

		if result.ExtraData != nil {
			result.ExtraData.StudentError = submission.Stderr
		}

		return result, nil
	}

	var scorer m.Scorer
	if scored, ok := test.(m.ScoredCase); ok {
		scorer = scored.Scorer
	}

	score, err := a.evaluator.Evaluate(ctx, scorer, submission.Stdout, reference.Stdout)
	if err != nil {
		return m.TestResult{}, err
	}

	if score.Percentage == 1 {
		result.Status = m.StatusPassed
	}

	result.Score = score.Percentage * result.MaxScore

	if score.Feedback != "" {
		sections = append(sections, "Feedback:\n\n"+score.Feedback)
	}

	result.Output = strings.Join(sections, "\n\n")

	return result, nil
}

// CompileFailureResults marks every test as errored because the submission
// did not compile. Only the first line of the compiler output is kept.
func CompileFailureResults(tests []m.TestCase, diagnostics string) []m.TestResult {
	output := "Compilation failed."
	if line := firstLine(diagnostics); line != "" {
		output = "Compilation failed:\n\n" + line
	}

	results := make([]m.TestResult, 0, len(tests))

	for _, test := range tests {
		result := newTestResult(test.Options())
		result.Status = m.StatusError
		result.Output = output
		results = append(results, result)
	}

	return results
}

func newTestResult(opts m.TestOptions) m.TestResult {
	visibility := opts.Visibility
	if visibility == "" {
		visibility = m.VisibilityVisible
	}

	return m.TestResult{
		MaxScore:   opts.MaxScore,
		Status:     m.StatusFailed,
		Name:       opts.Name,
		Visibility: visibility,
		Number:     opts.Number,
		Tags:       opts.Tags,
	}
}

func referenceFailure(index int, name, detail string) error {
	return configErrorf("The reference solution code failed to run on test (%d) %q with error:\n\n%s", index, displayName(name), detail)
}

func errorText(outcome m.ExecutionOutcome) string {
	if strings.TrimSpace(outcome.Stderr) != "" {
		return outcome.Stderr
	}

	return errorSummary(outcome)
}

func displayName(name string) string {
	if name == "" {
		return unnamedTest
	}

	return name
}
