package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PCOSCARE_HISTORY_FILE", "")
	os.Unsetenv("PCOSCARE_HISTORY_FILE")
	t.Setenv("PCOSCARE_GUIDE", "")
	os.Unsetenv("PCOSCARE_GUIDE")

	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "pcos_assessment_history.txt", cfg.HistoryFile)
	assert.Equal(t, "general", cfg.Guide)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PCOSCARE_HISTORY_FILE", "/tmp/h.txt")
	t.Setenv("PCOSCARE_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/h.txt", cfg.HistoryFile)
	assert.True(t, cfg.Debug)
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("PCOSCARE_LOG_FILE", "")
	os.Unsetenv("PCOSCARE_LOG_FILE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PCOSCARE_LOG_FILE=ops.log\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ops.log", cfg.LogFile)
	// godotenv writes into the process environment.
	os.Unsetenv("PCOSCARE_LOG_FILE")
}

func TestLoadBadValue(t *testing.T) {
	t.Setenv("PCOSCARE_DEBUG", "maybe")
	_, err := Load("")
	assert.Error(t, err)
}
