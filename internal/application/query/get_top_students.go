package query

import (
	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/display"
	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TOP STUDENTS QUERY
// Finds every student holding the roster-wide maximum grade and renders them
// through a composite display tree built fresh for this request.
// ══════════════════════════════════════════════════════════════════════════════

// GetTopStudentsQuery requests the top-scorer display.
type GetTopStudentsQuery struct{}

// GetTopStudentsHandler handles GetTopStudentsQuery.
type GetTopStudentsHandler struct {
	roster     *roster.Roster
	groupLabel string
	log        zerolog.Logger
}

// NewGetTopStudentsHandler creates the handler. groupLabel names the root
// group of the display tree.
func NewGetTopStudentsHandler(r *roster.Roster, groupLabel string, log zerolog.Logger) *GetTopStudentsHandler {
	return &GetTopStudentsHandler{roster: r, groupLabel: groupLabel, log: log}
}

// Handle computes the top scorers and renders the transient display tree.
// The aggregate failures of Roster.TopStudents (empty roster, student with
// no grades) surface unchanged.
func (h *GetTopStudentsHandler) Handle(GetTopStudentsQuery) (string, error) {
	top, err := h.roster.TopStudents()
	if err != nil {
		h.log.Debug().Err(err).Msg("top students unavailable")
		return "", err
	}

	group := display.NewGroup(h.groupLabel)
	for _, s := range top {
		if err := group.Add(display.NewLeaf(s.FullName())); err != nil {
			return "", err
		}
	}

	h.log.Debug().Int("top", len(top)).Msg("top students rendered")
	return group.Display(0), nil
}
