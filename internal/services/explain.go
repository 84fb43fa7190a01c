package services

import "transit-delay-service/internal/domain"

// Fixed bilingual display strings carried over from the operator-facing UI.
var (
	reasonRainy    = domain.Reason{Factor: "طقس ممطر / Rainy Weather", Impact: "+8.5 دقيقة"}
	reasonFoggy    = domain.Reason{Factor: "ضباب / Foggy Conditions", Impact: "+5.2 دقيقة"}
	reasonCloudy   = domain.Reason{Factor: "غيوم / Cloudy Sky", Impact: "+1.5 دقيقة"}
	reasonGoodWx   = domain.Reason{Factor: "طقس جيد / Good Weather", Impact: "إيجابي"}
	reasonPeakHour = domain.Reason{Factor: "وقت الذروة / Peak Hour", Impact: "+6.0 دقيقة"}
	reasonOffPeak  = domain.Reason{Factor: "وقت عادي / Off-Peak", Impact: "إيجابي"}
)

// ExplainPrediction derives the contributing factors from the same feature
// values the scorer saw, so the explanation always matches what was scored.
// Order is fixed: weather first, then peak/off-peak.
func ExplainPrediction(weather domain.WeatherCategory, isPeak bool) []domain.Reason {
	reasons := make([]domain.Reason, 0, 2)

	switch weather {
	case domain.WeatherRainy:
		reasons = append(reasons, reasonRainy)
	case domain.WeatherFoggy:
		reasons = append(reasons, reasonFoggy)
	case domain.WeatherCloudy:
		reasons = append(reasons, reasonCloudy)
	default:
		reasons = append(reasons, reasonGoodWx)
	}

	if isPeak {
		reasons = append(reasons, reasonPeakHour)
	} else {
		reasons = append(reasons, reasonOffPeak)
	}

	return reasons
}
