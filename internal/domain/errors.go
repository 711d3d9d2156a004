package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError is a problem traceable to the grader setup or the
// instructor's suite. It aborts the run before any report is written and is
// shown to the operator, never to the student.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return e.Message + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func wrapConfigError(err error, format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...), Err: err}
}
