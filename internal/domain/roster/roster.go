// Package roster contains the authoritative in-memory collection of students.
// The roster is the single source of truth: students are owned exclusively by
// it and mutated only through AddStudent and AddGrade. All extension
// mechanisms (notifications, report strategies, visitors) plug into the
// roster through narrow interfaces.
package roster

import (
	"errors"
	"fmt"

	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// Notifier is the notification channel fired synchronously on every
// successful grade insertion, before AddGrade returns.
type Notifier interface {
	Notify(studentName string, grade int)
}

// ReportStrategy renders the full roster to text. Strategies never mutate
// roster state.
type ReportStrategy interface {
	Render(students []*student.Student) (string, error)
}

// Visitor is a per-student computation applied during a roster traversal.
// The roster performs no aggregation of visitor output beyond collecting it.
type Visitor interface {
	Visit(s *student.Student) (string, error)
}

// Codec persists the roster to and from a flat-file representation.
type Codec interface {
	Save(path string, students []*student.Student) error
	Load(path string) ([]*student.Student, error)
}

// Roster holds all student records in insertion order. No uniqueness
// constraint is enforced; lookups return the first match in roster order.
type Roster struct {
	students []*student.Student
	notifier Notifier
	codec    Codec
}

// New creates an empty roster. Both the notifier and the codec may be nil:
// a nil notifier disables fan-out, a nil codec disables persistence.
func New(notifier Notifier, codec Codec) *Roster {
	return &Roster{
		students: make([]*student.Student, 0),
		notifier: notifier,
		codec:    codec,
	}
}

// AddStudent appends a new student with an empty grade sequence.
// There is no duplicate check: homonyms are distinct entries.
func (r *Roster) AddStudent(firstName, lastName string) *student.Student {
	s := student.New(firstName, lastName)
	r.students = append(r.students, s)
	return s
}

// AddGrade appends a grade to the first student matching the name pair and
// fires the notification channel with the full name and grade. If no student
// matches, it fails with shared.ErrStudentNotFound and no mutation occurs.
func (r *Roster) AddGrade(firstName, lastName string, grade int) error {
	s, ok := r.find(firstName, lastName)
	if !ok {
		return shared.NewDomainError("roster", "AddGrade", shared.ErrStudentNotFound).
			WithDetails("%s %s", firstName, lastName)
	}

	s.RecordGrade(grade)

	if r.notifier != nil {
		r.notifier.Notify(s.FullName(), grade)
	}
	return nil
}

// Find returns the first student matching the name pair in roster order.
func (r *Roster) Find(firstName, lastName string) (*student.Student, bool) {
	return r.find(firstName, lastName)
}

func (r *Roster) find(firstName, lastName string) (*student.Student, bool) {
	for _, s := range r.students {
		if s.HasName(firstName, lastName) {
			return s, true
		}
	}
	return nil, false
}

// Students returns the roster in insertion order. The slice is a copy but
// the records are shared: callers must treat them as read-only.
func (r *Roster) Students() []*student.Student {
	out := make([]*student.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Len returns the number of students on the roster.
func (r *Roster) Len() int {
	return len(r.students)
}

// TopStudents computes the maximum grade across the entire roster and
// returns every student whose sequence contains it at least once, in roster
// order. The aggregate is undefined over empty data: an empty roster fails
// with shared.ErrEmptyRoster, and any student with an empty grade sequence
// fails with shared.ErrNoGrades.
func (r *Roster) TopStudents() ([]*student.Student, error) {
	if len(r.students) == 0 {
		return nil, shared.NewDomainError("roster", "TopStudents", shared.ErrEmptyRoster)
	}

	highest := 0
	for i, s := range r.students {
		max, err := s.Max()
		if err != nil {
			return nil, shared.NewDomainError("roster", "TopStudents", err)
		}
		if i == 0 || max > highest {
			highest = max
		}
	}

	top := make([]*student.Student, 0, 1)
	for _, s := range r.students {
		if s.HasGrade(highest) {
			top = append(top, s)
		}
	}
	return top, nil
}

// GenerateReport delegates the full roster to the given strategy. The roster
// does not interpret the output.
func (r *Roster) GenerateReport(strategy ReportStrategy) (string, error) {
	if strategy == nil {
		return "", shared.NewDomainError("roster", "GenerateReport", errors.New("strategy is nil"))
	}
	return strategy.Render(r.Students())
}

// VisitStudents applies the visitor to every student in roster order,
// exactly once each. A per-student failure does not abort the traversal:
// remaining students are still visited and the accumulated errors are
// returned joined, alongside the lines produced for the students that
// succeeded.
func (r *Roster) VisitStudents(v Visitor) ([]string, error) {
	if v == nil {
		return nil, shared.NewDomainError("roster", "VisitStudents", errors.New("visitor is nil"))
	}

	lines := make([]string, 0, len(r.students))
	var errs []error
	for _, s := range r.students {
		line, err := v.Visit(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Join(errs...)
}

// Save writes the roster to path through the codec, one student per line in
// roster order.
func (r *Roster) Save(path string) error {
	if r.codec == nil {
		return shared.NewDomainError("roster", "Save", errors.New("no codec configured"))
	}
	if err := r.codec.Save(path, r.students); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}

// Load replaces the in-memory roster with the decoded contents of path.
// On an I/O failure the roster is left unchanged.
func (r *Roster) Load(path string) error {
	if r.codec == nil {
		return shared.NewDomainError("roster", "Load", errors.New("no codec configured"))
	}

	students, err := r.codec.Load(path)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	r.students = students
	return nil
}
