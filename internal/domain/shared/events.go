package shared

import "time"

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the domain.
const (
	// EventGradeRecorded - a grade was appended to a student's record.
	EventGradeRecorded EventType = "roster.grade_recorded"

	// EventStudentRegistered - a new student was added to the roster.
	EventStudentRegistered EventType = "roster.student_registered"

	// EventRosterLoaded - the roster was replaced from persistent storage.
	EventRosterLoaded EventType = "roster.loaded"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// EventType implements Event.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent creates a new base event stamped with the current time.
func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{Type: eventType, Timestamp: time.Now()}
}

// GradeRecorded is emitted synchronously whenever a grade is appended to a
// student. The student name is the concatenation "first last".
type GradeRecorded struct {
	BaseEvent
	StudentName string `json:"student_name"`
	Grade       int    `json:"grade"`
}

// NewGradeRecorded creates a GradeRecorded event.
func NewGradeRecorded(studentName string, grade int) GradeRecorded {
	return GradeRecorded{
		BaseEvent:   NewBaseEvent(EventGradeRecorded),
		StudentName: studentName,
		Grade:       grade,
	}
}

// StudentRegistered is emitted when a student is appended to the roster.
type StudentRegistered struct {
	BaseEvent
	StudentName string `json:"student_name"`
}

// NewStudentRegistered creates a StudentRegistered event.
func NewStudentRegistered(studentName string) StudentRegistered {
	return StudentRegistered{
		BaseEvent:   NewBaseEvent(EventStudentRegistered),
		StudentName: studentName,
	}
}
