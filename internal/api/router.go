package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"transit-delay-service/internal/api/handlers"
	"transit-delay-service/internal/ports"
	"transit-delay-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). Every operator-facing endpoint is also exposed without
// the /api prefix, matching the original frontend.
func NewRouter(
	predictor *services.Predictor,
	users ports.UserRepository,
	catalog ports.RouteCatalog,
	authDB *sql.DB,
	corsOrigins []string,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(requestLogger(logger))

	predictHandler := &handlers.PredictHandler{Predictor: predictor, Logger: logger}
	authHandler := &handlers.AuthHandler{Repo: users, Logger: logger}
	routesHandler := &handlers.RoutesHandler{Catalog: catalog}
	dbHealth := &handlers.DBHealth{DB: authDB}

	r.Get("/", handlers.Root)
	r.Get("/health", dbHealth.Check)
	r.Get("/healthz", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	for _, prefix := range []string{"", "/api"} {
		r.Post(prefix+"/predict", predictHandler.Predict)
		r.Get(prefix+"/routes", routesHandler.List)
		r.Post(prefix+"/auth/signup", authHandler.Signup)
		r.Post(prefix+"/auth/login", authHandler.Login)
	}

	return r
}
