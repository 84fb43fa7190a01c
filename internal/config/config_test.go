package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "ARTIFACTS_DIR", "ROUTES_CSV",
		"DB_PATH", "DATABASE_URL",
		"MODEL_SERVER_URL", "MODEL_SERVER_TIMEOUT",
		"CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "artifacts", cfg.ArtifactsDir)
	assert.Equal(t, "data/cleaned_transport_data.csv", cfg.RoutesCSV)
	assert.Equal(t, "data/auth.db", cfg.DBPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.ModelServerURL)
	assert.Equal(t, 5*time.Second, cfg.ModelServerTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/transit")
	t.Setenv("MODEL_SERVER_URL", "http://model:9000")
	t.Setenv("MODEL_SERVER_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost/transit", cfg.DatabaseURL)
	assert.Equal(t, "http://model:9000", cfg.ModelServerURL)
	assert.Equal(t, 2*time.Second, cfg.ModelServerTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_SERVER_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	_, err := Load()
	assert.Error(t, err)
}
