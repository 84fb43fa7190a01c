package domain

// Status is the qualitative band derived from a predicted delay.
type Status string

const (
	StatusOnTime   Status = "On Time"
	StatusMinor    Status = "Minor Delay"
	StatusModerate Status = "Moderate Delay"
	StatusHigh     Status = "High Delay"
	StatusSevere   Status = "Severe Delay"
)

// Confidence tiers: one value when the trained model scored the prediction,
// one when the heuristic fallback produced it.
const (
	ConfidenceModel    = 92
	ConfidenceFallback = 50
)

// Reason is a human-readable contributing factor attached to a prediction.
type Reason struct {
	Factor string
	Impact string
}

// Prediction is the scored outcome for a single departure.
type Prediction struct {
	Delay      float64
	Status     Status
	Confidence int
	Reasons    []Reason
}

// BandDelay maps a clamped delay (minutes) to its status band.
// Thresholds are exclusive lower bounds.
func BandDelay(delay float64) Status {
	switch {
	case delay > 15:
		return StatusSevere
	case delay > 10:
		return StatusHigh
	case delay > 5:
		return StatusModerate
	case delay > 0:
		return StatusMinor
	default:
		return StatusOnTime
	}
}

// WeatherCategory is the coarse weather bucket used by the heuristic fallback
// and the explanation generator.
type WeatherCategory string

const (
	WeatherClear  WeatherCategory = "clear"
	WeatherCloudy WeatherCategory = "cloudy"
	WeatherFoggy  WeatherCategory = "foggy"
	WeatherRainy  WeatherCategory = "rainy"
)

// CategorizeWeather buckets a normalized weather label. Unknown labels count
// as clear so that an unseen condition never inflates the estimate.
func CategorizeWeather(label string) WeatherCategory {
	switch label {
	case "rainy", "rain":
		return WeatherRainy
	case "foggy", "fog":
		return WeatherFoggy
	case "cloudy", "cloud":
		return WeatherCloudy
	default:
		return WeatherClear
	}
}
