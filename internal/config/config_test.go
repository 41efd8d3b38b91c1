package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 300, cfg.NavDelay)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.LogConsole)
}

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("STAMPBOOK_SERVER_URL", "https://passport.example.com")
	t.Setenv("STAMPBOOK_NAV_DELAY_MS", "150")
	t.Setenv("STAMPBOOK_LOG_LEVEL", "DEBUG")
	t.Setenv("STAMPBOOK_LOG_CONSOLE", "true")

	cfg := DefaultConfig()
	assert.Equal(t, "https://passport.example.com", cfg.ServerURL)
	assert.Equal(t, 150, cfg.NavDelay)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.True(t, cfg.LogConsole)
}

func TestDefaultConfigBadEnvInt(t *testing.T) {
	t.Setenv("STAMPBOOK_NAV_DELAY_MS", "soonish")
	cfg := DefaultConfig()
	assert.Equal(t, 300, cfg.NavDelay)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.ServerURL = "https://passport.example.com"
	cfg.NavDelay = 200
	cfg.LogLevel = "WARN"
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(home, ".stampbook", "config.yaml"))
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://passport.example.com", got.ServerURL)
	assert.Equal(t, 200, got.NavDelay)
	assert.Equal(t, "WARN", got.LogLevel)
}
