package domain

import (
	"context"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// DiffEvaluator scores a student output against the reference output.
type DiffEvaluator interface {
	// Evaluate runs scorer, or exact comparison when scorer is nil, and
	// checks the result. A malformed result is a ConfigurationError naming
	// the scorer.
	Evaluate(ctx context.Context, scorer m.Scorer, studentOutput, referenceOutput string) (m.ScoreResult, error)
}

type diffEvaluator struct {
	fallback m.Scorer
}

// NewDiffEvaluator constructs a DiffEvaluator that falls back to ExactScorer.
func NewDiffEvaluator() DiffEvaluator {
	return &diffEvaluator{fallback: ExactScorer{}}
}

func (d *diffEvaluator) Evaluate(ctx context.Context, scorer m.Scorer, studentOutput, referenceOutput string) (m.ScoreResult, error) {
	if scorer == nil {
		scorer = d.fallback
	}

	result, err := scorer.Score(ctx, studentOutput, referenceOutput)
	if err != nil {
		if IsConfigurationError(err) {
			return m.ScoreResult{}, err
		}

		return m.ScoreResult{}, wrapConfigError(err, "The scorer %s failed", scorer.Name())
	}

	if err := validateScoreResult(scorer.Name(), result); err != nil {
		return m.ScoreResult{}, err
	}

	return result, nil
}

func validateScoreResult(name string, result m.ScoreResult) error {
	// NaN fails both comparisons.
	if !(result.Percentage >= 0 && result.Percentage <= 1) {
		return configErrorf("The scorer %s must return a score percentage between 0 and 1 inclusive.", name)
	}

	return nil
}
