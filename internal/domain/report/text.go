package report

import (
	"fmt"
	"strings"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// TextReport renders every student in roster order followed by the raw grade
// sequence in insertion order. Students without grades render with an empty
// sequence - the all-grades report has no aggregate to reject.
type TextReport struct{}

// NewTextReport creates the all-grades text strategy.
func NewTextReport() *TextReport {
	return &TextReport{}
}

// Name implements Strategy.
func (t *TextReport) Name() string {
	return StrategyText
}

// Render implements Strategy.
func (t *TextReport) Render(students []*student.Student) (string, error) {
	var sb strings.Builder

	sb.WriteString("Grades report\n")
	sb.WriteString("─────────────────────\n")

	for _, s := range students {
		sb.WriteString(s.FullName())
		sb.WriteString(":")
		for _, g := range s.Grades {
			sb.WriteString(fmt.Sprintf(" %d", g))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("─────────────────────\n")
	sb.WriteString(fmt.Sprintf("Total students: %d\n", len(students)))

	return sb.String(), nil
}
