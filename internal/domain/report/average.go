package report

import (
	"fmt"
	"strings"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// AverageReport renders every student in roster order with the arithmetic
// mean of their grades formatted to two decimal places. A student with an
// empty grade sequence fails the report: the division by zero is rejected,
// never coerced to zero or NaN.
type AverageReport struct{}

// NewAverageReport creates the average strategy.
func NewAverageReport() *AverageReport {
	return &AverageReport{}
}

// Name implements Strategy.
func (a *AverageReport) Name() string {
	return StrategyAverage
}

// Render implements Strategy.
func (a *AverageReport) Render(students []*student.Student) (string, error) {
	var sb strings.Builder

	sb.WriteString("Average grades report\n")
	sb.WriteString("─────────────────────\n")

	for _, s := range students {
		avg, err := s.Average()
		if err != nil {
			return "", fmt.Errorf("average report: %w", err)
		}
		sb.WriteString(fmt.Sprintf("%s: %.2f\n", s.FullName(), avg))
	}

	sb.WriteString("─────────────────────\n")
	sb.WriteString(fmt.Sprintf("Total students: %d\n", len(students)))

	return sb.String(), nil
}
