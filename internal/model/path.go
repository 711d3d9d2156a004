// Package model defines the data structures shared by the grading engine.
package model

import "time"

// Path represents a file system path.
type Path string

// CompileFailurePolicy decides what happens when the submission does not compile.
type CompileFailurePolicy string

const (
	// CompileFailureFatal aborts the run with a configuration error.
	CompileFailureFatal CompileFailurePolicy = "fatal"
	// CompileFailureReport writes a report in which every test errored.
	CompileFailureReport CompileFailurePolicy = "report"
)

// Valid reports whether p is a known policy.
func (p CompileFailurePolicy) Valid() bool {
	return p == CompileFailureFatal || p == CompileFailureReport
}

// RunContext carries the directories and settings of a single grading run.
// It is populated once at startup and passed by value into the workflow.
type RunContext struct {
	SourceDir     Path
	SubmissionDir Path
	ResultsDir    Path
	// SuiteName is the suffix used to locate the suite file under SourceDir.
	SuiteName string

	// CheckstyleJar is the style tool jar, resolved under SourceDir when relative.
	CheckstyleJar  string
	DefaultTimeout time.Duration
	CompileFailure CompileFailurePolicy
	StyleParallel  int
	ExtraData      bool
}
