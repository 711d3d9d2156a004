package domain

import (
	"fmt"
	"strings"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// errorSummary reduces a failed run to the one line a student may see: the
// first non-blank stderr line cut before its first ": ". For Java that keeps
// the exception class and drops the message, which may carry test data.
func errorSummary(outcome m.ExecutionOutcome) string {
	line := firstLine(outcome.Stderr)
	if line == "" {
		return fmt.Sprintf("Process exited with status %d.", outcome.ExitCode)
	}

	head, _, _ := strings.Cut(line, ": ")

	return head
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}

	return ""
}
