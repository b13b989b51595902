package command

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
	"github.com/grade-hub/gradebook-hub/internal/domain/shared"
	"github.com/grade-hub/gradebook-hub/internal/infrastructure/persistence/flatfile"
)

func TestRegisterStudent(t *testing.T) {
	r := roster.New(nil, nil)
	h := NewRegisterStudentHandler(r, zerolog.Nop())

	s := h.Handle(RegisterStudentCommand{FirstName: "Ayan", LastName: "Bekov"})
	assert.Equal(t, "Ayan Bekov", s.FullName())
	assert.Equal(t, 1, r.Len())

	// No duplicate check: registering the same name again adds a second entry.
	h.Handle(RegisterStudentCommand{FirstName: "Ayan", LastName: "Bekov"})
	assert.Equal(t, 2, r.Len())
}

func TestRecordGrade(t *testing.T) {
	r := roster.New(nil, nil)
	s := r.AddStudent("Ayan", "Bekov")
	h := NewRecordGradeHandler(r, zerolog.Nop())

	require.NoError(t, h.Handle(RecordGradeCommand{FirstName: "Ayan", LastName: "Bekov", Grade: 90}))
	assert.Equal(t, []int{90}, s.Grades)

	err := h.Handle(RecordGradeCommand{FirstName: "Dana", LastName: "Serikova", Grade: 90})
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
}

func TestPersistRoster_DefaultPath(t *testing.T) {
	defaultPath := filepath.Join(t.TempDir(), "gradebook.txt")

	codec := flatfile.NewCodec(zerolog.Nop())
	r := roster.New(nil, codec)
	s := r.AddStudent("Ayan", "Bekov")
	s.RecordGrade(90)

	h := NewPersistRosterHandler(r, defaultPath, zerolog.Nop())

	written, err := h.HandleSave(SaveRosterCommand{})
	require.NoError(t, err)
	assert.Equal(t, defaultPath, written)

	read, err := h.HandleLoad(LoadRosterCommand{})
	require.NoError(t, err)
	assert.Equal(t, defaultPath, read)
	assert.Equal(t, 1, r.Len())
}

func TestPersistRoster_ExplicitPath(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "other.txt")

	codec := flatfile.NewCodec(zerolog.Nop())
	r := roster.New(nil, codec)
	r.AddStudent("Ayan", "Bekov")

	h := NewPersistRosterHandler(r, "unused-default.txt", zerolog.Nop())

	written, err := h.HandleSave(SaveRosterCommand{Path: explicit})
	require.NoError(t, err)
	assert.Equal(t, explicit, written)
}

func TestPersistRoster_LoadMissingFile(t *testing.T) {
	codec := flatfile.NewCodec(zerolog.Nop())
	r := roster.New(nil, codec)

	h := NewPersistRosterHandler(r, filepath.Join(t.TempDir(), "absent.txt"), zerolog.Nop())

	_, err := h.HandleLoad(LoadRosterCommand{})
	assert.Error(t, err)
}
