package handlers

import "net/http"

// Root serves the service banner the original frontend probes on load.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":  "running",
		"message": "Transport Delay Prediction API",
		"endpoints": []string{
			"/api/predict",
			"/api/routes",
			"/api/auth/login",
			"/api/auth/signup",
		},
	})
}
