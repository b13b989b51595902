package command

import (
	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
)

// SaveRosterCommand writes the roster to a flat file. An empty Path falls
// back to the configured default data file.
type SaveRosterCommand struct {
	Path string
}

// LoadRosterCommand replaces the in-memory roster from a flat file. An empty
// Path falls back to the configured default data file.
type LoadRosterCommand struct {
	Path string
}

// PersistRosterHandler handles SaveRosterCommand and LoadRosterCommand.
type PersistRosterHandler struct {
	roster      *roster.Roster
	defaultPath string
	log         zerolog.Logger
}

// NewPersistRosterHandler creates the handler.
func NewPersistRosterHandler(r *roster.Roster, defaultPath string, log zerolog.Logger) *PersistRosterHandler {
	return &PersistRosterHandler{roster: r, defaultPath: defaultPath, log: log}
}

// HandleSave writes the roster and returns the path written.
func (h *PersistRosterHandler) HandleSave(cmd SaveRosterCommand) (string, error) {
	path := h.path(cmd.Path)
	if err := h.roster.Save(path); err != nil {
		return "", err
	}
	h.log.Info().Str("path", path).Int("students", h.roster.Len()).Msg("roster saved")
	return path, nil
}

// HandleLoad replaces the roster and returns the path read.
func (h *PersistRosterHandler) HandleLoad(cmd LoadRosterCommand) (string, error) {
	path := h.path(cmd.Path)
	if err := h.roster.Load(path); err != nil {
		return "", err
	}
	h.log.Info().
		Str("event", string(shared.EventRosterLoaded)).
		Str("path", path).
		Int("students", h.roster.Len()).
		Msg("roster loaded")
	return path, nil
}

func (h *PersistRosterHandler) path(p string) string {
	if p == "" {
		return h.defaultPath
	}
	return p
}
