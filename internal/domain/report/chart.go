package report

import (
	"fmt"
	"strings"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// DefaultChartMarker is the marker used when no marker is configured.
const DefaultChartMarker = '#'

// ChartReport renders every student as a horizontal bar: the floored integer
// average repeated as a run of the marker rune. The same empty-sequence rule
// as the average report applies.
type ChartReport struct {
	marker rune
}

// NewChartReport creates the chart strategy with the given marker rune.
// A zero marker falls back to DefaultChartMarker.
func NewChartReport(marker rune) *ChartReport {
	if marker == 0 {
		marker = DefaultChartMarker
	}
	return &ChartReport{marker: marker}
}

// Name implements Strategy.
func (c *ChartReport) Name() string {
	return StrategyChart
}

// Render implements Strategy.
func (c *ChartReport) Render(students []*student.Student) (string, error) {
	var sb strings.Builder

	sb.WriteString("Grades chart\n")
	sb.WriteString("─────────────────────\n")

	for _, s := range students {
		avg, err := s.Average()
		if err != nil {
			return "", fmt.Errorf("chart report: %w", err)
		}
		length := int(avg)
		if length < 0 {
			length = 0
		}
		bar := strings.Repeat(string(c.marker), length)
		sb.WriteString(fmt.Sprintf("%s: %s\n", s.FullName(), bar))
	}

	sb.WriteString("─────────────────────\n")
	sb.WriteString(fmt.Sprintf("Total students: %d\n", len(students)))

	return sb.String(), nil
}
