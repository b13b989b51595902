// Package report contains the pluggable whole-roster report strategies.
// A strategy is a pure function of the full roster to textual output: it
// never mutates roster state and is selected at call time.
package report

import (
	"fmt"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// Strategy renders the full roster to text. It mirrors the roster's
// ReportStrategy interface so any Strategy can be handed straight to
// Roster.GenerateReport.
type Strategy interface {
	// Name returns the stable identifier of the strategy.
	Name() string

	// Render produces the textual report for the students in the order given.
	Render(students []*student.Student) (string, error)
}

// Strategy identifiers accepted by Parse. These are the values the CLI shell
// passes through as strategyId.
const (
	StrategyText    = "text"
	StrategyAverage = "average"
	StrategyChart   = "chart"
)

// Parse resolves a strategy identifier to a Strategy. The marker rune is
// used by the chart strategy and ignored by the others.
func Parse(id string, marker rune) (Strategy, error) {
	switch id {
	case StrategyText:
		return NewTextReport(), nil
	case StrategyAverage:
		return NewAverageReport(), nil
	case StrategyChart:
		return NewChartReport(marker), nil
	default:
		return nil, fmt.Errorf("unknown report strategy %q", id)
	}
}
