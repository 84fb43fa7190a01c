package services

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/observability"
	"transit-delay-service/internal/ports"
)

const defaultHour = 8

// Featurizer turns a normalized prediction request into the fixed-width
// vector the model was trained on. It is total: every input yields a vector,
// with defaults standing in for anything unparseable or unseen.
type Featurizer struct {
	RouteEncoder   ports.LabelEncoder
	WeatherEncoder ports.LabelEncoder
	Logger         *slog.Logger
	Metrics        *observability.Metrics

	warned sync.Map // unseen labels already logged, to keep the log channel bounded
}

// Built-in weather codes used when no trained encoder is available. Must stay
// aligned with the label order the training CSV produces.
var builtinWeatherCodes = map[string]int{
	"sunny":  0,
	"clear":  0,
	"cloudy": 1,
	"foggy":  2,
	"rainy":  3,
	"rain":   3,
}

// Featurize derives (hour_of_day, is_peak_hour, weather_code, route_code)
// from a request. The request must already be normalized.
func (f *Featurizer) Featurize(req domain.PredictionRequest) domain.FeatureVector {
	hour := ParseHour(req.ScheduledTime)

	isPeak := 0
	if domain.IsPeakHour(hour) {
		isPeak = 1
	}

	return domain.FeatureVector{
		Hour:        hour,
		IsPeak:      isPeak,
		WeatherCode: f.weatherCode(req.Weather),
		RouteCode:   f.routeCode(req.RouteID),
	}
}

// ParseHour extracts the clock hour from a scheduled time string. "HH:MM"
// takes the part before the first colon; otherwise the first two characters
// are tried. Anything unparseable yields the default hour. The range is
// deliberately not validated: the model tolerates any hour seen in training.
func ParseHour(scheduled string) int {
	if strings.Contains(scheduled, ":") {
		h, err := strconv.Atoi(strings.SplitN(scheduled, ":", 2)[0])
		if err != nil {
			return defaultHour
		}
		return h
	}

	if len(scheduled) >= 2 {
		h, err := strconv.Atoi(scheduled[:2])
		if err != nil {
			return defaultHour
		}
		return h
	}

	return defaultHour
}

func (f *Featurizer) weatherCode(label string) int {
	if f.WeatherEncoder == nil {
		if code, ok := builtinWeatherCodes[label]; ok {
			return code
		}
		return 0
	}

	code, ok := f.WeatherEncoder.Lookup(label)
	if !ok {
		f.warnUnseen("weather", label)
		return 0
	}
	return code
}

func (f *Featurizer) routeCode(route string) int {
	if f.RouteEncoder == nil {
		return 0
	}

	code, ok := f.RouteEncoder.Lookup(route)
	if !ok {
		f.warnUnseen("route", route)
		return 0
	}
	return code
}

// warnUnseen logs a vocabulary miss once per (kind, label) pair. The metric
// still counts every occurrence.
func (f *Featurizer) warnUnseen(kind, label string) {
	if f.Metrics != nil {
		f.Metrics.UnseenLabels.WithLabelValues(kind).Inc()
	}

	if f.Logger == nil {
		return
	}
	if _, seen := f.warned.LoadOrStore(kind+"|"+label, struct{}{}); seen {
		return
	}
	f.Logger.Warn("label outside trained vocabulary, using code 0", "kind", kind, "label", label)
}
