// Package student contains the core domain model of a gradebook student.
// This is pure business logic - there are no external dependencies here
// beyond ID generation.
package student

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
)

// Student is the central entity of the system: an identity plus an ordered,
// append-only sequence of grades. Insertion order is chronological order and
// duplicate grades are allowed. Two students with identical names are
// distinct entries; the roster owns deduplication policy (there is none).
type Student struct {
	// ID is an internal unique identifier. Lookups never use it - identity
	// toward callers is the (FirstName, LastName) pair.
	ID string

	// FirstName and LastName form the student's identity.
	FirstName string
	LastName  string

	// Grades is the ordered grade sequence. Empty until a grade is recorded.
	Grades []int
}

// New creates a student with an empty grade sequence.
func New(firstName, lastName string) *Student {
	return &Student{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Grades:    make([]int, 0),
	}
}

// FullName returns the concatenation "first last" used in notifications
// and rendered output.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// HasName reports whether the student's identity matches the given pair.
func (s *Student) HasName(firstName, lastName string) bool {
	return s.FirstName == firstName && s.LastName == lastName
}

// RecordGrade appends a grade to the sequence.
func (s *Student) RecordGrade(grade int) {
	s.Grades = append(s.Grades, grade)
}

// HasGrade reports whether the grade appears in the sequence at least once.
func (s *Student) HasGrade(grade int) bool {
	for _, g := range s.Grades {
		if g == grade {
			return true
		}
	}
	return false
}

// Average returns the arithmetic mean of the grade sequence.
// Fails with shared.ErrNoGrades on an empty sequence - division by zero is
// rejected, not silently coerced to zero.
func (s *Student) Average() (float64, error) {
	if len(s.Grades) == 0 {
		return 0, fmt.Errorf("%s: %w", s.FullName(), shared.ErrNoGrades)
	}

	sum := 0
	for _, g := range s.Grades {
		sum += g
	}
	return float64(sum) / float64(len(s.Grades)), nil
}

// Max returns the highest grade in the sequence.
// Fails with shared.ErrNoGrades on an empty sequence.
func (s *Student) Max() (int, error) {
	if len(s.Grades) == 0 {
		return 0, fmt.Errorf("%s: %w", s.FullName(), shared.ErrNoGrades)
	}

	max := s.Grades[0]
	for _, g := range s.Grades[1:] {
		if g > max {
			max = g
		}
	}
	return max, nil
}

// Min returns the lowest grade in the sequence.
// Fails with shared.ErrNoGrades on an empty sequence.
func (s *Student) Min() (int, error) {
	if len(s.Grades) == 0 {
		return 0, fmt.Errorf("%s: %w", s.FullName(), shared.ErrNoGrades)
	}

	min := s.Grades[0]
	for _, g := range s.Grades[1:] {
		if g < min {
			min = g
		}
	}
	return min, nil
}

// String returns a representation of the student for logging.
func (s *Student) String() string {
	grades := make([]string, len(s.Grades))
	for i, g := range s.Grades {
		grades[i] = fmt.Sprintf("%d", g)
	}
	return fmt.Sprintf("Student{Name: %s, Grades: [%s]}", s.FullName(), strings.Join(grades, " "))
}

// Clone creates a deep copy of the student.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Grades = make([]int, len(s.Grades))
	copy(clone.Grades, s.Grades)
	return &clone
}
