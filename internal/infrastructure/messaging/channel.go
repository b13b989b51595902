// Package messaging implements the grade notification channel: a registry of
// listeners invoked synchronously, in registration order, whenever a grade
// is recorded on the roster.
package messaging

import (
	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
)

// GradeListener receives a notification for every successful grade
// insertion. The student name is the concatenation "first last".
type GradeListener interface {
	OnGradeRecorded(ev shared.GradeRecorded) error
}

// GradeChannel fans a grade notification out to every registered listener.
// Delivery is synchronous and happens on the calling goroutine, once per
// AddGrade call, before AddGrade returns. Listener failures are isolated:
// an error or panic in one listener is logged and never prevents delivery
// to subsequent listeners, nor does it propagate back into the grade-add
// operation.
type GradeChannel struct {
	listeners []GradeListener
	log       zerolog.Logger
}

// NewGradeChannel creates a channel with no listeners.
func NewGradeChannel(log zerolog.Logger) *GradeChannel {
	return &GradeChannel{
		listeners: make([]GradeListener, 0),
		log:       log,
	}
}

// Register appends the listener to the end of the subscriber sequence.
// No identity check is performed: registering the same listener twice means
// it is notified twice.
func (c *GradeChannel) Register(l GradeListener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
	c.log.Debug().Int("listeners", len(c.listeners)).Msg("listener registered")
}

// Unregister removes the first matching listener, a no-op if absent.
func (c *GradeChannel) Unregister(l GradeListener) {
	for i, registered := range c.listeners {
		if registered == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			c.log.Debug().Int("listeners", len(c.listeners)).Msg("listener unregistered")
			return
		}
	}
}

// Len returns the number of registered listeners.
func (c *GradeChannel) Len() int {
	return len(c.listeners)
}

// Notify builds a single GradeRecorded event and invokes every current
// listener in registration order with it. Implements roster.Notifier.
func (c *GradeChannel) Notify(studentName string, grade int) {
	ev := shared.NewGradeRecorded(studentName, grade)
	for i, l := range c.listeners {
		c.deliver(i, l, ev)
	}
}

// deliver calls a single listener, containing any error or panic.
func (c *GradeChannel) deliver(index int, l GradeListener, ev shared.GradeRecorded) {
	defer func() {
		if rec := recover(); rec != nil {
			c.log.Error().
				Int("listener", index).
				Str("student", ev.StudentName).
				Int("grade", ev.Grade).
				Interface("panic", rec).
				Msg("listener panicked during notification")
		}
	}()

	if err := l.OnGradeRecorded(ev); err != nil {
		c.log.Error().
			Err(err).
			Int("listener", index).
			Str("student", ev.StudentName).
			Int("grade", ev.Grade).
			Msg("listener failed to handle notification")
	}
}
