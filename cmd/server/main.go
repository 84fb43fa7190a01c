package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"transit-delay-service/internal/adapters/artifacts"
	"transit-delay-service/internal/adapters/catalog"
	"transit-delay-service/internal/adapters/modelserver"
	"transit-delay-service/internal/adapters/repositories"
	"transit-delay-service/internal/api"
	"transit-delay-service/internal/config"
	"transit-delay-service/internal/observability"
	"transit-delay-service/internal/platform/db"
	"transit-delay-service/internal/ports"
	"transit-delay-service/internal/services"
)

// main is the application composition root.
// It loads the model artifacts once, wires concrete adapters behind ports,
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	metrics := observability.NewMetrics()

	// Model artifacts are read once; the service runs in fallback mode when
	// they are missing or unusable.
	store := artifacts.Load(cfg.ArtifactsDir, logger)
	if store.State() == artifacts.StateModel {
		metrics.ModelLoaded.Set(1)
	} else {
		metrics.ModelLoaded.Set(0)
	}

	featurizer := &services.Featurizer{
		RouteEncoder:   store.RouteEncoder(),
		WeatherEncoder: store.WeatherEncoder(),
		Logger:         logger,
		Metrics:        metrics,
	}

	// Optional out-of-process scorer, tried before the local pipeline.
	var remote ports.RemoteScorer
	if cfg.ModelServerURL != "" {
		client, err := modelserver.New(cfg.ModelServerURL, cfg.ModelServerTimeout)
		if err != nil {
			logger.Error("invalid model server config", "error", err)
			os.Exit(1)
		}
		remote = client
		logger.Info("remote model server enabled", "url", cfg.ModelServerURL)
	}

	predictor := services.NewPredictor(featurizer, store.Model(), remote, logger, metrics)

	authDB, users, err := openAuthStore(cfg)
	if err != nil {
		logger.Error("failed to open auth store", "error", err)
		os.Exit(1)
	}
	defer authDB.Close()

	routeCatalog := catalog.LoadCSV(cfg.RoutesCSV, logger)

	router := api.NewRouter(predictor, users, routeCatalog, authDB, cfg.CORSOrigins, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", "error", err)
		return
	}
	logger.Info("server stopped")
}

// openAuthStore opens Postgres when DATABASE_URL is set, the local SQLite
// file otherwise, and ensures the schema exists.
func openAuthStore(cfg *config.Config) (*sql.DB, ports.UserRepository, error) {
	if cfg.DatabaseURL != "" {
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return pg, repositories.NewSQLUserRepository(pg), nil
	}

	lite, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database %q: %w", cfg.DBPath, err)
	}
	if err := lite.Ping(); err != nil {
		lite.Close()
		return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", cfg.DBPath, err)
	}
	if err := repositories.InitSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}

	return lite, repositories.NewSqliteUserRepository(lite), nil
}
