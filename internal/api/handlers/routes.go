package handlers

import (
	"net/http"

	"transit-delay-service/internal/api/dto"
	"transit-delay-service/internal/ports"
)

// RoutesHandler exposes the route catalogue read from the trip history.
type RoutesHandler struct {
	Catalog ports.RouteCatalog
}

func (h *RoutesHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.RoutesResponse{
		Routes:              h.Catalog.Routes(),
		AverageDelayMinutes: h.Catalog.AverageDelays(),
	}

	writeJSON(w, r, http.StatusOK, res)
}
