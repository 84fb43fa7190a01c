package domain

import "strings"

// Defaults applied when a prediction request omits fields.
const (
	DefaultRouteID       = "R1"
	DefaultScheduledTime = "08:00"
	DefaultWeather       = "sunny"
	DefaultDayType       = "weekday"
)

// PredictionRequest is a single scheduled departure to score.
// DayType is accepted for forward compatibility; the current model does not
// consume it.
type PredictionRequest struct {
	RouteID       string
	ScheduledTime string
	Weather       string
	DayType       string
}

// Normalized returns a copy with defaults filled in and labels canonicalized:
// route IDs uppercase, weather labels lowercase, both trimmed.
func (r PredictionRequest) Normalized() PredictionRequest {
	route := strings.ToUpper(strings.TrimSpace(r.RouteID))
	if route == "" {
		route = DefaultRouteID
	}

	scheduled := strings.TrimSpace(r.ScheduledTime)
	if scheduled == "" {
		scheduled = DefaultScheduledTime
	}

	weather := strings.ToLower(strings.TrimSpace(r.Weather))
	if weather == "" {
		weather = DefaultWeather
	}

	dayType := strings.ToLower(strings.TrimSpace(r.DayType))
	if dayType == "" {
		dayType = DefaultDayType
	}

	return PredictionRequest{
		RouteID:       route,
		ScheduledTime: scheduled,
		Weather:       weather,
		DayType:       dayType,
	}
}
