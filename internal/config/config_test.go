package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.HostTimeout)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 1000, cfg.MaxSessions)
}

func TestLoadEnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HOST_URL=https://bridge.example\nMAX_SESSIONS=5\nHOST_TIMEOUT=3s\n"), 0o600))
	t.Setenv("DEFAULT_LOCALE", "fr")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://bridge.example", cfg.HostURL)
	assert.Equal(t, 5, cfg.MaxSessions)
	assert.Equal(t, 3*time.Second, cfg.HostTimeout)
	assert.Equal(t, "fr", cfg.DefaultLocale)
}
