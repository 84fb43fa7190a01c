package dto

type RoutesResponse struct {
	Routes []string `json:"routes"`
	// Mean historical delay per route, in minutes. Omitted when the trip
	// history is unavailable.
	AverageDelayMinutes map[string]float64 `json:"average_delay_minutes,omitempty"`
}
