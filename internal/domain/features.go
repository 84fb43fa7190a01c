package domain

// FeatureColumns is the column order the model was trained on. The metadata
// artifact records the same list so the two can be cross-checked at load time.
// Reordering these silently corrupts predictions.
var FeatureColumns = []string{"hour_of_day", "is_peak_hour", "weather_code", "route_code"}

// FeatureVector is the fixed-width numeric input for the delay model.
type FeatureVector struct {
	Hour        int
	IsPeak      int
	WeatherCode int
	RouteCode   int
}

// Columns flattens the vector in training order.
func (v FeatureVector) Columns() []float64 {
	return []float64{float64(v.Hour), float64(v.IsPeak), float64(v.WeatherCode), float64(v.RouteCode)}
}

// IsPeakHour reports whether an hour falls in the morning or evening rush
// window [7,9] or [16,19]. The training job applies the same rule; changing it
// invalidates deployed model artifacts.
func IsPeakHour(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 16 && hour <= 19)
}
