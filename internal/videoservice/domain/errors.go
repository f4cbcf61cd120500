package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrVideoConflict = errors.New("video id already exists")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
