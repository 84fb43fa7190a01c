package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/observability"
	"transit-delay-service/internal/ports"
)

// Predictor runs the end-to-end scoring pipeline: featurize, score (remote
// scorer if configured, then local model, then heuristic fallback), clamp,
// band, explain. Immutable after construction and safe for concurrent use.
type Predictor struct {
	featurizer *Featurizer
	model      ports.Regressor    // nil in fallback-only mode
	remote     ports.RemoteScorer // optional
	logger     *slog.Logger
	metrics    *observability.Metrics
}

func NewPredictor(
	featurizer *Featurizer,
	model ports.Regressor,
	remote ports.RemoteScorer,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Predictor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Predictor{
		featurizer: featurizer,
		model:      model,
		remote:     remote,
		logger:     logger,
		metrics:    metrics,
	}
}

// Predict scores a single departure. The only surfaced failure is a scoring
// error from the model itself; malformed input and missing artifacts degrade
// to defaults and the fallback path instead.
func (p *Predictor) Predict(ctx context.Context, req domain.PredictionRequest) (*domain.Prediction, error) {
	start := time.Now()

	req = req.Normalized()

	// A configured remote model server wins when reachable. Any failure is
	// recoverable: log and score locally.
	if p.remote != nil {
		pred, err := p.remote.Predict(ctx, req)
		if err == nil {
			p.observe("remote", pred.Status, start)
			return pred, nil
		}
		p.logger.Warn("remote scorer unavailable, scoring locally", "error", err)
	}

	features := p.featurizer.Featurize(req)

	var (
		raw        float64
		confidence int
		source     string
	)

	if p.model != nil {
		scored, err := p.model.Predict(features.Columns())
		if err != nil {
			if p.metrics != nil {
				p.metrics.PredictionErrors.Inc()
			}
			return nil, fmt.Errorf("predict: score model: %w", err)
		}
		raw = scored
		confidence = domain.ConfidenceModel
		source = "model"
	} else {
		raw = HeuristicDelay(features.IsPeak == 1, domain.CategorizeWeather(req.Weather))
		confidence = domain.ConfidenceFallback
		source = "fallback"
	}

	// Clamp before banding so status is a pure function of the reported delay.
	delay := math.Round(math.Max(0, raw)*10) / 10

	pred := &domain.Prediction{
		Delay:      delay,
		Status:     domain.BandDelay(delay),
		Confidence: confidence,
		Reasons:    ExplainPrediction(domain.CategorizeWeather(req.Weather), features.IsPeak == 1),
	}

	p.observe(source, pred.Status, start)
	return pred, nil
}

func (p *Predictor) observe(source string, status domain.Status, start time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.Predictions.WithLabelValues(source, string(status)).Inc()
	p.metrics.PredictionDuration.Observe(time.Since(start).Seconds())
}
