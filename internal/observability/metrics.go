package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the prediction service.
type Metrics struct {
	Predictions        *prometheus.CounterVec // labels: source={model,fallback,remote}, status
	PredictionDuration prometheus.Histogram
	PredictionErrors   prometheus.Counter
	UnseenLabels       *prometheus.CounterVec // labels: kind={route,weather}
	ModelLoaded        prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Predictions,
		m.PredictionDuration,
		m.PredictionErrors,
		m.UnseenLabels,
		m.ModelLoaded,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transit_delay",
			Name:      "predictions_total",
			Help:      "Predictions served, by scoring source and status band.",
		}, []string{"source", "status"}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "transit_delay",
			Name:      "prediction_duration_seconds",
			Help:      "End-to-end scoring latency.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		PredictionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transit_delay",
			Name:      "prediction_errors_total",
			Help:      "Scoring failures surfaced to the caller.",
		}),
		UnseenLabels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transit_delay",
			Name:      "unseen_labels_total",
			Help:      "Requests carrying a label outside the trained vocabulary.",
		}, []string{"kind"}),
		ModelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "transit_delay",
			Name:      "model_loaded",
			Help:      "1 when a trained model artifact is serving, 0 in fallback mode.",
		}),
	}
}
