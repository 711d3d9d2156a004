// Package controller provides output adapters for displaying grading results.
package controller

import (
	"context"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// RunInfo describes a grading run that is about to start.
type RunInfo struct {
	RunID string
	Suite m.Path
	Tests int
	Style bool
}

// UI defines the interface for displaying grading progress and reports.
type UI interface {
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayTestResult(ctx context.Context, index int, result m.TestResult)
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayMessage(ctx context.Context, message string)
}
