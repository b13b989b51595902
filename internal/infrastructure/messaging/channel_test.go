package messaging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
)

// scriptedListener records deliveries and optionally misbehaves.
type scriptedListener struct {
	id       string
	trace    *[]string
	err      error
	panicMsg string
}

func (l *scriptedListener) OnGradeRecorded(shared.GradeRecorded) error {
	*l.trace = append(*l.trace, l.id)
	if l.panicMsg != "" {
		panic(l.panicMsg)
	}
	return l.err
}

func TestNotify_RegistrationOrder(t *testing.T) {
	var trace []string
	ch := NewGradeChannel(zerolog.Nop())

	ch.Register(&scriptedListener{id: "first", trace: &trace})
	ch.Register(&scriptedListener{id: "second", trace: &trace})
	ch.Register(&scriptedListener{id: "third", trace: &trace})

	ch.Notify("Ayan Bekov", 90)

	assert.Equal(t, []string{"first", "second", "third"}, trace)
}

func TestNotify_EventPayload(t *testing.T) {
	var got []shared.GradeRecorded
	ch := NewGradeChannel(zerolog.Nop())
	ch.Register(&capturingListener{events: &got})

	ch.Notify("Ayan Bekov", 90)

	require.Len(t, got, 1)
	assert.Equal(t, shared.EventGradeRecorded, got[0].EventType())
	assert.Equal(t, "Ayan Bekov", got[0].StudentName)
	assert.Equal(t, 90, got[0].Grade)
	assert.False(t, got[0].OccurredAt().IsZero())
}

type capturingListener struct {
	events *[]shared.GradeRecorded
}

func (l *capturingListener) OnGradeRecorded(ev shared.GradeRecorded) error {
	*l.events = append(*l.events, ev)
	return nil
}

func TestRegister_DuplicatesPermitted(t *testing.T) {
	var trace []string
	ch := NewGradeChannel(zerolog.Nop())

	l := &scriptedListener{id: "dup", trace: &trace}
	ch.Register(l)
	ch.Register(l)

	ch.Notify("Ayan Bekov", 90)
	assert.Equal(t, []string{"dup", "dup"}, trace)
}

func TestUnregister_RemovesFirstMatch(t *testing.T) {
	var trace []string
	ch := NewGradeChannel(zerolog.Nop())

	l := &scriptedListener{id: "dup", trace: &trace}
	ch.Register(l)
	ch.Register(l)

	ch.Unregister(l)
	require.Equal(t, 1, ch.Len())

	ch.Notify("Ayan Bekov", 90)
	assert.Equal(t, []string{"dup"}, trace)
}

func TestUnregister_AbsentIsNoOp(t *testing.T) {
	var trace []string
	ch := NewGradeChannel(zerolog.Nop())
	ch.Register(&scriptedListener{id: "kept", trace: &trace})

	ch.Unregister(&scriptedListener{id: "stranger", trace: &trace})
	assert.Equal(t, 1, ch.Len())
}

func TestNotify_FailingListenerDoesNotBlockOthers(t *testing.T) {
	var trace []string
	ch := NewGradeChannel(zerolog.Nop())

	ch.Register(&scriptedListener{id: "fails", trace: &trace, err: errors.New("boom")})
	ch.Register(&scriptedListener{id: "after", trace: &trace})

	ch.Notify("Ayan Bekov", 90)
	assert.Equal(t, []string{"fails", "after"}, trace)
}

func TestNotify_PanickingListenerIsContained(t *testing.T) {
	var trace []string
	ch := NewGradeChannel(zerolog.Nop())

	ch.Register(&scriptedListener{id: "panics", trace: &trace, panicMsg: "listener bug"})
	ch.Register(&scriptedListener{id: "after", trace: &trace})

	assert.NotPanics(t, func() {
		ch.Notify("Ayan Bekov", 90)
	})
	assert.Equal(t, []string{"panics", "after"}, trace)
}

func TestConsoleListener(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleListener(&buf)

	require.NoError(t, l.OnGradeRecorded(shared.NewGradeRecorded("Ayan Bekov", 90)))
	assert.Equal(t, "Notification: Ayan Bekov received grade 90\n", buf.String())
}
