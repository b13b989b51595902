package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

func TestSave_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	codec := NewCodec(zerolog.Nop())

	a := student.New("Ayan", "Bekov")
	a.RecordGrade(80)
	a.RecordGrade(95)
	b := student.New("Dana", "Serikova") // zero grades: two fields only

	require.NoError(t, codec.Save(path, []*student.Student{a, b}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ayan,Bekov,80,95\nDana,Serikova\n", string(data))
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	codec := NewCodec(zerolog.Nop())

	a := student.New("Ayan", "Bekov")
	a.RecordGrade(80)
	a.RecordGrade(95)
	b := student.New("Dana", "Serikova")
	b.RecordGrade(70)

	require.NoError(t, codec.Save(path, []*student.Student{a, b}))

	loaded, err := codec.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Ayan Bekov", loaded[0].FullName())
	assert.Equal(t, []int{80, 95}, loaded[0].Grades)
	assert.Equal(t, "Dana Serikova", loaded[1].FullName())
	assert.Equal(t, []int{70}, loaded[1].Grades)
}

func TestLoad_SkipsMalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	content := "Ayan,Bekov,80,oops,95\n" + // unparsable grade field skipped
		"justonefield\n" + // fewer than two fields: line skipped
		"\n" + // empty line skipped
		"Dana,Serikova\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := NewCodec(zerolog.Nop()).Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, []int{80, 95}, loaded[0].Grades)
	assert.Empty(t, loaded[1].Grades)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewCodec(zerolog.Nop()).Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_UnwritablePath(t *testing.T) {
	err := NewCodec(zerolog.Nop()).Save(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), nil)
	assert.Error(t, err)
}
