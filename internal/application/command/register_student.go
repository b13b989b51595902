// Package command contains write operations (CQRS - Commands).
package command

import (
	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// Appends a new student to the roster. There is no duplicate check and no
// name validation: registration always succeeds.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the data to register a student.
type RegisterStudentCommand struct {
	FirstName string
	LastName  string
}

// RegisterStudentHandler handles RegisterStudentCommand.
type RegisterStudentHandler struct {
	roster *roster.Roster
	log    zerolog.Logger
}

// NewRegisterStudentHandler creates the handler.
func NewRegisterStudentHandler(r *roster.Roster, log zerolog.Logger) *RegisterStudentHandler {
	return &RegisterStudentHandler{roster: r, log: log}
}

// Handle appends the student and returns the created record.
func (h *RegisterStudentHandler) Handle(cmd RegisterStudentCommand) *student.Student {
	s := h.roster.AddStudent(cmd.FirstName, cmd.LastName)

	ev := shared.NewStudentRegistered(s.FullName())
	h.log.Debug().
		Str("event", string(ev.EventType())).
		Time("occurred_at", ev.OccurredAt()).
		Str("student", ev.StudentName).
		Str("id", s.ID).
		Msg("student registered")
	return s
}
