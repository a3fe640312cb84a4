package task

import (
	"errors"
	"strings"
)

// ValidationError is returned when a task is created or edited with
// missing or invalid fields.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return "invalid task: " + e.Reason
	}
	return "please fill out all fields (missing: " + strings.Join(e.Fields, ", ") + ")"
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
