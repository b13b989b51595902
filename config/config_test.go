package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gradebook-hub", cfg.App.Name)
	assert.Equal(t, "gradebook.txt", cfg.Storage.DataFile)
	assert.Equal(t, '#', cfg.Marker())
	assert.Equal(t, "Best students", cfg.Report.TopGroupLabel)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GRADEBOOK_DATA_FILE", "/tmp/grades.txt")
	t.Setenv("GRADEBOOK_CHART_MARKER", "*")
	t.Setenv("GRADEBOOK_LOG_LEVEL", "debug")
	t.Setenv("GRADEBOOK_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/grades.txt", cfg.Storage.DataFile)
	assert.Equal(t, '*', cfg.Marker())
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.True(t, cfg.App.Debug)
}

func TestLoad_YAMLFileWithEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradebook.yaml")
	content := `
storage:
  data_file: from-file.txt
report:
  chart_marker: "="
  top_group_label: Top of the class
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("GRADEBOOK_CONFIG", path)
	t.Setenv("GRADEBOOK_DATA_FILE", "from-env.txt")

	cfg, err := Load()
	require.NoError(t, err)

	// Env wins over file, file wins over defaults.
	assert.Equal(t, "from-env.txt", cfg.Storage.DataFile)
	assert.Equal(t, '=', cfg.Marker())
	assert.Equal(t, "Top of the class", cfg.Report.TopGroupLabel)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("GRADEBOOK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.Report.ChartMarker = "##"
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.Storage.DataFile = ""
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.Observability.LogFormat = "xml"
	assert.Error(t, cfg.Validate())
}
