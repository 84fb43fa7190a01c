package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"transit-delay-service/internal/api/dto"
	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/services"
)

type PredictHandler struct {
	Predictor *services.Predictor
	Logger    *slog.Logger
}

// Predict scores a single departure. All request fields are optional; the
// pipeline fills defaults and never rejects a request for bad field values.
// Only a scoring failure surfaces, as a soft error with HTTP 500.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictRequest

	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	pred, err := h.Predictor.Predict(r.Context(), domain.PredictionRequest{
		RouteID:       req.RouteID,
		ScheduledTime: req.ScheduledTime,
		Weather:       req.Weather,
		DayType:       req.DayType,
	})
	if err != nil {
		h.Logger.Error("prediction failed", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, dto.PredictErrorResponse{
			Delay:   0,
			Error:   err.Error(),
			Reasons: []dto.ReasonResponse{},
		})
		return
	}

	res := dto.PredictResponse{
		Delay:      pred.Delay,
		Status:     string(pred.Status),
		Confidence: pred.Confidence,
		Reasons:    make([]dto.ReasonResponse, 0, len(pred.Reasons)),
	}
	for _, reason := range pred.Reasons {
		res.Reasons = append(res.Reasons, dto.ReasonResponse{Factor: reason.Factor, Impact: reason.Impact})
	}

	writeJSON(w, r, http.StatusOK, res)
}
