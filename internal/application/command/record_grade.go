package command

import (
	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD GRADE COMMAND
// Appends a grade to the first student matching the name pair. A successful
// record fires the notification channel exactly once before Handle returns;
// an unknown name surfaces shared.ErrStudentNotFound with no mutation.
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeCommand contains the data to record a grade.
type RecordGradeCommand struct {
	FirstName string
	LastName  string
	Grade     int
}

// RecordGradeHandler handles RecordGradeCommand.
type RecordGradeHandler struct {
	roster *roster.Roster
	log    zerolog.Logger
}

// NewRecordGradeHandler creates the handler.
func NewRecordGradeHandler(r *roster.Roster, log zerolog.Logger) *RecordGradeHandler {
	return &RecordGradeHandler{roster: r, log: log}
}

// Handle records the grade.
func (h *RecordGradeHandler) Handle(cmd RecordGradeCommand) error {
	if err := h.roster.AddGrade(cmd.FirstName, cmd.LastName, cmd.Grade); err != nil {
		h.log.Debug().Err(err).
			Str("first_name", cmd.FirstName).
			Str("last_name", cmd.LastName).
			Msg("grade not recorded")
		return err
	}
	return nil
}
