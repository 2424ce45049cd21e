package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrParseFailure indicates a syntax-tree analyzer could not build a
	// tree from the input. Always recovered locally into a syntax Issue.
	ErrParseFailure = errors.New("source could not be parsed")

	// ErrInvalidIssue indicates an issue violates the structural
	// invariant (missing fields or enum values outside the allowed sets).
	ErrInvalidIssue = errors.New("issue violates structural invariant")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// AnalysisError wraps an error with the operation that produced it.
type AnalysisError struct {
	// Op is the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// WrapError creates a new AnalysisError with context.
func WrapError(op string, err error) *AnalysisError {
	return &AnalysisError{Op: op, Err: err}
}
