package messaging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
)

// ConsoleListener writes a human-readable line to Out for every grade
// notification. The CLI shell registers one by default so grade insertions
// are visible as they happen.
type ConsoleListener struct {
	Out io.Writer
}

// NewConsoleListener creates a console listener writing to out.
func NewConsoleListener(out io.Writer) *ConsoleListener {
	return &ConsoleListener{Out: out}
}

// OnGradeRecorded implements GradeListener.
func (l *ConsoleListener) OnGradeRecorded(ev shared.GradeRecorded) error {
	_, err := fmt.Fprintf(l.Out, "Notification: %s received grade %d\n", ev.StudentName, ev.Grade)
	return err
}

// LogListener emits a structured log record for every grade notification.
type LogListener struct {
	log zerolog.Logger
}

// NewLogListener creates a log listener.
func NewLogListener(log zerolog.Logger) *LogListener {
	return &LogListener{log: log}
}

// OnGradeRecorded implements GradeListener.
func (l *LogListener) OnGradeRecorded(ev shared.GradeRecorded) error {
	l.log.Info().
		Str("event", string(ev.EventType())).
		Time("occurred_at", ev.OccurredAt()).
		Str("student", ev.StudentName).
		Int("grade", ev.Grade).
		Msg("grade recorded")
	return nil
}
