package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("KAIROS_BACKEND_URL", "")
	t.Setenv("KAIROS_USER_ID", "")
	l := NewLoaderWithDir(t.TempDir())
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8787", cfg.Backend.URL)
	assert.Equal(t, "1", cfg.Backend.UserID)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "#3788d8", cfg.UI.DefaultCalendarColor)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[backend]
url = "https://kairos.example.com"
token = "secreto"
user_id = "7"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "https://kairos.example.com", cfg.Backend.URL)
	assert.Equal(t, "secreto", cfg.Backend.Token)
	assert.Equal(t, "7", cfg.Backend.UserID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds, "unset keys keep their defaults")
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[backend]
url = "https://file.example.com"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	t.Setenv("KAIROS_BACKEND_URL", "https://env.example.com")
	t.Setenv("KAIROS_USER_ID", "9")

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Backend.URL)
	assert.Equal(t, "9", cfg.Backend.UserID)
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("[backend\nurl="), 0o644))
	_, err := NewLoaderWithDir(dir).Load()
	assert.Error(t, err)
}

func TestManagerInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kairos")
	m := NewManagerWithDir(dir)

	assert.False(t, m.Info().Exists)
	require.NoError(t, m.Init())
	assert.True(t, m.Info().Exists)

	// The starter file is valid and loads.
	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8787", cfg.Backend.URL)

	assert.ErrorIs(t, m.Init(), os.ErrExist)
}
