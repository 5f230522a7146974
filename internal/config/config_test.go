package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	unsetEnv(t, "CONFIG_FILE", "HTTP_PORT", "WEBHOOK_MAX_RETRIES")
	t.Setenv("API_BASE_URL", "https://api.campus.test/")
	t.Setenv("SESSION_BACKEND", "Memory")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("REFRESH_DISCARD_STALE", "true")
	t.Setenv("API_KEYS", " one , two")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://api.campus.test/", cfg.APIBaseURL)
	assert.Equal(t, SessionBackendMemory, cfg.SessionBackend)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.DiscardStaleRefresh)
	assert.Equal(t, []string{"one", "two"}, cfg.APIKeys)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "API_BASE_URL")
}

func TestLoadConfig_PostgresNeedsDatabaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.campus.test/")
	t.Setenv("SESSION_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "DATABASE_URL")
}

// unsetEnv убирает переменные на время теста
func unsetEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	unsetEnv(t, "API_BASE_URL", "SESSION_BACKEND", "WEBHOOK_TIMEOUT")
	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_base_url: https://from-file.test/
http_port: "9090"
session_backend: redis
webhook_timeout: 10s
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://from-file.test/", cfg.APIBaseURL)
	assert.Equal(t, "7070", cfg.HTTPPort) // окружение важнее файла
	assert.Equal(t, SessionBackendRedis, cfg.SessionBackend)
	assert.Equal(t, 10*time.Second, cfg.WebhookTimeout)
}

func TestLoadConfig_UnknownBackend(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.campus.test/")
	t.Setenv("SESSION_BACKEND", "cookie")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "unknown session backend")
}
