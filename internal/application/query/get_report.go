// Package query contains read operations following the CQRS pattern.
// Queries never modify state - they only read and return rendered text.
package query

import (
	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/report"
	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET REPORT QUERY
// Resolves a strategy identifier and delegates the full roster to it.
// ══════════════════════════════════════════════════════════════════════════════

// GetReportQuery selects the report strategy by identifier.
type GetReportQuery struct {
	// StrategyID is one of report.StrategyText, StrategyAverage, StrategyChart.
	StrategyID string
}

// GetReportHandler handles GetReportQuery.
type GetReportHandler struct {
	roster *roster.Roster
	marker rune
	log    zerolog.Logger
}

// NewGetReportHandler creates the handler. The marker rune configures the
// chart strategy.
func NewGetReportHandler(r *roster.Roster, marker rune, log zerolog.Logger) *GetReportHandler {
	return &GetReportHandler{roster: r, marker: marker, log: log}
}

// Handle renders the report.
func (h *GetReportHandler) Handle(q GetReportQuery) (string, error) {
	strategy, err := report.Parse(q.StrategyID, h.marker)
	if err != nil {
		return "", err
	}

	out, err := h.roster.GenerateReport(strategy)
	if err != nil {
		h.log.Debug().Err(err).Str("strategy", strategy.Name()).Msg("report failed")
		return "", err
	}

	h.log.Debug().Str("strategy", strategy.Name()).Int("students", h.roster.Len()).Msg("report generated")
	return out, nil
}
