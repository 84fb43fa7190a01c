package ports

import (
	"context"
	"transit-delay-service/internal/domain"
)

// Regressor scores a single feature vector in training column order.
// Implementations must be safe for concurrent use; the in-process tree
// ensemble is read-only after load.
type Regressor interface {
	// Predict returns the raw (unclamped) delay estimate in minutes.
	Predict(features []float64) (float64, error)
}

// RemoteScorer is an optional out-of-process scorer tried before the local
// pipeline. Errors are recoverable: the caller falls through to local scoring.
type RemoteScorer interface {
	Predict(ctx context.Context, req domain.PredictionRequest) (*domain.Prediction, error)
}
