package model

import "context"

// ScoreResult is what a Scorer reports for one pair of outputs.
type ScoreResult struct {
	// Percentage is in [0, 1].
	Percentage float64
	Feedback   string
}

// Scorer computes a fractional score from the student and reference outputs.
type Scorer interface {
	// Name identifies the scorer in configuration errors.
	Name() string
	Score(ctx context.Context, studentOutput, referenceOutput string) (ScoreResult, error)
}
