// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// ErrStudentNotFound - a grade was recorded for a name that is not on the roster.
	ErrStudentNotFound = errors.New("student not found")

	// ErrNoGrades - an aggregate (average, maximum) was requested over an
	// empty grade sequence. Empty aggregates are rejected, never coerced to zero.
	ErrNoGrades = errors.New("no grades recorded")

	// ErrEmptyRoster - a roster-wide aggregate was requested while the roster
	// holds no students.
	ErrEmptyRoster = errors.New("roster is empty")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "roster", "report", "display"
	Op      string // the operation that failed, e.g., "AddGrade"
	Err     error  // the underlying error
	Details string // optional human-readable context
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s.%s: %v (%s)", e.Domain, e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("%s.%s: %v", e.Domain, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a DomainError wrapping err.
func NewDomainError(domain, op string, err error) *DomainError {
	return &DomainError{Domain: domain, Op: op, Err: err}
}

// WithDetails attaches human-readable context to the error.
func (e *DomainError) WithDetails(format string, args ...any) *DomainError {
	e.Details = fmt.Sprintf(format, args...)
	return e
}
