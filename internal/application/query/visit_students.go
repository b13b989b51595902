package query

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
	"github.com/grade-hub/gradebook-hub/internal/domain/visitor"
)

// ══════════════════════════════════════════════════════════════════════════════
// VISIT STUDENTS QUERY
// Applies a per-student visitor across the roster traversal. Every student
// is visited exactly once in roster order; a per-student failure never
// aborts the remaining visits.
// ══════════════════════════════════════════════════════════════════════════════

// VisitStudentsQuery selects the visitor by identifier.
type VisitStudentsQuery struct {
	// VisitorID is one of visitor.VisitorAverage, visitor.VisitorMinMax.
	VisitorID string
}

// VisitStudentsHandler handles VisitStudentsQuery.
type VisitStudentsHandler struct {
	roster *roster.Roster
	log    zerolog.Logger
}

// NewVisitStudentsHandler creates the handler.
func NewVisitStudentsHandler(r *roster.Roster, log zerolog.Logger) *VisitStudentsHandler {
	return &VisitStudentsHandler{roster: r, log: log}
}

// Handle runs the traversal. The returned text holds the lines of the
// students that succeeded; the error joins the per-student failures and is
// non-nil alongside non-empty text when only some students failed.
func (h *VisitStudentsHandler) Handle(q VisitStudentsQuery) (string, error) {
	v, err := visitor.Parse(q.VisitorID)
	if err != nil {
		return "", err
	}

	lines, visitErr := h.roster.VisitStudents(v)
	if visitErr != nil {
		h.log.Debug().Err(visitErr).Str("visitor", v.Name()).Msg("some visits failed")
	}

	return strings.Join(lines, "\n"), visitErr
}
