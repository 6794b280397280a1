package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalidConfig indicates the configuration record is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrPresetNotFound indicates the preset file does not exist.
	ErrPresetNotFound = errors.New("config: preset file not found")

	// ErrInvalidYAML indicates invalid YAML syntax in a preset file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap ties every field error to ErrInvalidConfig for errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationErrors aggregates every violation found in a single pass, so
// the collector can report all problems at once instead of one at a time.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is against ErrInvalidConfig.
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidConfig
}
