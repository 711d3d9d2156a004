package model

// Status is the outcome of a single test.
type Status string

const (
	// StatusPassed means full credit.
	StatusPassed Status = "passed"
	// StatusFailed means the outputs were compared and did not fully match.
	StatusFailed Status = "failed"
	// StatusError means the submission crashed or timed out.
	StatusError Status = "error"
)

// ExtraData carries raw run data for the autograder author. Gradescope does
// not show it to students.
type ExtraData struct {
	ReferenceOutput string `json:"reference_output"`
	StudentOutput   string `json:"student_output"`
	StudentError    string `json:"student_error,omitempty"`
}

// TestResult is one entry of the report's tests list.
type TestResult struct {
	Score      float64    `json:"score"`
	MaxScore   float64    `json:"max_score"`
	Status     Status     `json:"status"`
	Name       string     `json:"name"`
	Output     string     `json:"output"`
	Visibility Visibility `json:"visibility"`
	Number     string     `json:"number,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	ExtraData  *ExtraData `json:"extra_data,omitempty"`
}

// Report is the results.json document.
type Report struct {
	// ExecutionTime is the summed submission run time in seconds.
	ExecutionTime float64      `json:"execution_time"`
	Tests         []TestResult `json:"tests"`
}

// Totals returns the earned and available points across all tests.
func (r Report) Totals() (score, maxScore float64) {
	for _, test := range r.Tests {
		score += test.Score
		maxScore += test.MaxScore
	}

	return score, maxScore
}
