package dto

type PredictRequest struct {
	RouteID       string `json:"route_id"`
	ScheduledTime string `json:"scheduled_time"`
	Weather       string `json:"weather"`
	DayType       string `json:"day_type"`
}

type ReasonResponse struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
}

type PredictResponse struct {
	Delay      float64          `json:"delay"`
	Status     string           `json:"status"`
	Confidence int              `json:"confidence"`
	Reasons    []ReasonResponse `json:"reasons"`
}

// PredictErrorResponse is the soft-failure shape: zero delay, the error
// message, and an empty reason list.
type PredictErrorResponse struct {
	Delay   float64          `json:"delay"`
	Error   string           `json:"error"`
	Reasons []ReasonResponse `json:"reasons"`
}
