package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}

// DBHealth reports readiness including auth store connectivity.
type DBHealth struct {
	DB *sql.DB
}

func (h *DBHealth) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{
				"status":   "error",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}
