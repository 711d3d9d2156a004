package model

import "time"

// Visibility is the student-facing disclosure level of a test result.
type Visibility string

const (
	// VisibilityVisible shows the result immediately.
	VisibilityVisible Visibility = "visible"
	// VisibilityHidden never shows the result to students.
	VisibilityHidden Visibility = "hidden"
	// VisibilityAfterDueDate shows the result once the due date passed.
	VisibilityAfterDueDate Visibility = "after_due_date"
	// VisibilityAfterPublished shows the result once grades are published.
	VisibilityAfterPublished Visibility = "after_published"
)

// Valid reports whether v is one of the Gradescope visibility levels.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityVisible, VisibilityHidden, VisibilityAfterDueDate, VisibilityAfterPublished:
		return true
	}

	return false
}

// TestOptions holds the per-test settings copied into the report.
type TestOptions struct {
	Name       string
	MaxScore   float64
	Visibility Visibility
	// Timeout bounds the submission run. Zero means no deadline.
	Timeout time.Duration
	Number  string
	Tags    []string
}

// DefaultTestOptions returns the options a test gets when it sets nothing.
func DefaultTestOptions() TestOptions {
	return TestOptions{MaxScore: 1, Visibility: VisibilityVisible}
}

// TestCase is one configured comparison. It is either a SimpleCase or a ScoredCase.
type TestCase interface {
	Args() string
	Options() TestOptions
	testCase()
}

// SimpleCase compares outputs by exact string equality.
type SimpleCase struct {
	Arguments string
	Opts      TestOptions
}

// Args implements TestCase.
func (c SimpleCase) Args() string { return c.Arguments }

// Options implements TestCase.
func (c SimpleCase) Options() TestOptions { return c.Opts }

func (SimpleCase) testCase() {}

// ScoredCase compares outputs with a custom Scorer.
type ScoredCase struct {
	Arguments string
	Scorer    Scorer
	Opts      TestOptions
}

// Args implements TestCase.
func (c ScoredCase) Args() string { return c.Arguments }

// Options implements TestCase.
func (c ScoredCase) Options() TestOptions { return c.Opts }

func (ScoredCase) testCase() {}

// StyleCheckConfig enables the style test.
type StyleCheckConfig struct {
	// ConfigFile is the checks file; empty selects the bundled default.
	ConfigFile string
	FileRegex  string
	MaxScore   float64
}

// DefaultStyleFileRegex selects every Java source file.
const DefaultStyleFileRegex = `.*\.java`

// Suite is a loaded and validated test configuration.
type Suite struct {
	EntryPoint string
	Classpath  string
	Tests      []TestCase
	Style      *StyleCheckConfig
}
