// Package config provides configuration for the command center.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Data backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the command center configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Data
	DataBackend  string
	DatabaseURL  string
	FixturesPath string // empty selects the compiled-in fixtures

	// Dashboard
	PageRenderTimeout time.Duration
	CommandCenterURL  string // base URL the dashboard CLI fetches from

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:          getEnvInt("HTTP_PORT", 8080),
		DataBackend:       getEnv("DATA_BACKEND", BackendMemory),
		DatabaseURL:       getEnv("DATABASE_URL", "file::memory:?cache=shared"),
		FixturesPath:      getEnv("FIXTURES_PATH", ""),
		PageRenderTimeout: time.Duration(getEnvInt("PAGE_RENDER_TIMEOUT_MS", 2000)) * time.Millisecond,
		CommandCenterURL:  getEnv("COMMAND_CENTER_URL", "http://localhost:8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.DataBackend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown data backend %q", c.DataBackend)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.PageRenderTimeout <= 0 {
		return fmt.Errorf("page render timeout must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
