package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr     string
	ArtifactsDir string
	RoutesCSV    string

	// Auth store: DatabaseURL selects Postgres; otherwise the SQLite file at
	// DBPath is used.
	DBPath      string
	DatabaseURL string

	// Optional out-of-process scorer tried before the local pipeline.
	ModelServerURL     string
	ModelServerTimeout time.Duration

	CORSOrigins []string

	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	modelServerTimeout, err := parseDuration("MODEL_SERVER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:     Get("HTTP_ADDR", ":8080"),
		ArtifactsDir: Get("ARTIFACTS_DIR", "artifacts"),
		RoutesCSV:    Get("ROUTES_CSV", "data/cleaned_transport_data.csv"),

		DBPath:      Get("DB_PATH", "data/auth.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		ModelServerURL:     os.Getenv("MODEL_SERVER_URL"),
		ModelServerTimeout: modelServerTimeout,

		CORSOrigins: splitList(Get("CORS_ORIGINS", "*")),

		LogLevel:        Get("LOG_LEVEL", "info"),
		LogFormat:       Get("LOG_FORMAT", "text"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.ArtifactsDir == "" {
		return nil, fmt.Errorf("ARTIFACTS_DIR must not be empty")
	}

	return cfg, nil
}

// Get returns the environment variable value, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := Get(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
