// Package visitor contains per-student computations applied across the
// roster traversal. The extension point is the computation itself: the
// roster and the student never learn which computation runs, so new
// per-entity computations plug in without touching either.
package visitor

import (
	"fmt"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// Visitor computes and renders one line for a single student. It mirrors the
// roster's Visitor interface so any implementation can be handed straight to
// Roster.VisitStudents.
type Visitor interface {
	// Name returns the stable identifier of the visitor.
	Name() string

	// Visit produces the rendered line for one student.
	Visit(s *student.Student) (string, error)
}

// Visitor identifiers accepted by Parse. These are the values the CLI shell
// passes through as visitorId.
const (
	VisitorAverage = "average"
	VisitorMinMax  = "minmax"
)

// Parse resolves a visitor identifier to a Visitor.
func Parse(id string) (Visitor, error) {
	switch id {
	case VisitorAverage:
		return NewAverageVisitor(), nil
	case VisitorMinMax:
		return NewMinMaxVisitor(), nil
	default:
		return nil, fmt.Errorf("unknown visitor %q", id)
	}
}

// AverageVisitor renders a student's average grade. Visiting a student with
// an empty grade sequence fails, and the roster traversal carries on to the
// remaining students.
type AverageVisitor struct{}

// NewAverageVisitor creates the average visitor.
func NewAverageVisitor() *AverageVisitor {
	return &AverageVisitor{}
}

// Name implements Visitor.
func (v *AverageVisitor) Name() string {
	return VisitorAverage
}

// Visit implements Visitor.
func (v *AverageVisitor) Visit(s *student.Student) (string, error) {
	avg, err := s.Average()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: average %.2f", s.FullName(), avg), nil
}

// MinMaxVisitor renders a student's lowest and highest grade. Same
// empty-sequence rule as the average visitor.
type MinMaxVisitor struct{}

// NewMinMaxVisitor creates the min/max visitor.
func NewMinMaxVisitor() *MinMaxVisitor {
	return &MinMaxVisitor{}
}

// Name implements Visitor.
func (v *MinMaxVisitor) Name() string {
	return VisitorMinMax
}

// Visit implements Visitor.
func (v *MinMaxVisitor) Visit(s *student.Student) (string, error) {
	min, err := s.Min()
	if err != nil {
		return "", err
	}
	max, err := s.Max()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: min %d, max %d", s.FullName(), min, max), nil
}
