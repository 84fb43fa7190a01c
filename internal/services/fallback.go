package services

import "transit-delay-service/internal/domain"

// Heuristic fallback constants, in minutes. These are part of the observable
// contract: the explanation strings quote them and the tests assert them.
const (
	RainyPenalty  = 8.5
	FoggyPenalty  = 5.2
	CloudyPenalty = 1.5
	PeakPenalty   = 6.0
	OffPeakCredit = 2.0
)

// HeuristicDelay is the closed-form estimate used when no model artifact is
// serving. Pure function of the peak flag and weather category.
func HeuristicDelay(isPeak bool, weather domain.WeatherCategory) float64 {
	delay := 0.0

	switch weather {
	case domain.WeatherRainy:
		delay += RainyPenalty
	case domain.WeatherFoggy:
		delay += FoggyPenalty
	case domain.WeatherCloudy:
		delay += CloudyPenalty
	}

	if isPeak {
		delay += PeakPenalty
	} else {
		delay -= OffPeakCredit
	}

	if delay < 0 {
		return 0
	}
	return delay
}
