package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATA_BACKEND", "DATABASE_URL", "FIXTURES_PATH", "PAGE_RENDER_TIMEOUT_MS", "COMMAND_CENTER_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.Equal(t, "", cfg.FixturesPath)
	assert.Equal(t, 2*time.Second, cfg.PageRenderTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.CommandCenterURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("PAGE_RENDER_TIMEOUT_MS", "250")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, 250*time.Millisecond, cfg.PageRenderTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	assert.Equal(t, 8080, Load().HTTPPort)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.DataBackend = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.HTTPPort = 0
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.PageRenderTimeout = 0
	assert.Error(t, cfg.Validate())
}
