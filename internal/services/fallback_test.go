package services

import (
	"testing"

	"transit-delay-service/internal/domain"
)

func TestHeuristicDelay(t *testing.T) {
	cases := []struct {
		name    string
		isPeak  bool
		weather domain.WeatherCategory
		want    float64
	}{
		{"clear off-peak clamps to zero", false, domain.WeatherClear, 0},
		{"clear peak", true, domain.WeatherClear, 6.0},
		{"cloudy off-peak clamps to zero", false, domain.WeatherCloudy, 0},
		{"cloudy peak", true, domain.WeatherCloudy, 7.5},
		{"foggy off-peak", false, domain.WeatherFoggy, 3.2},
		{"foggy peak", true, domain.WeatherFoggy, 11.2},
		{"rainy off-peak", false, domain.WeatherRainy, 6.5},
		{"rainy peak", true, domain.WeatherRainy, 14.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HeuristicDelay(c.isPeak, c.weather)
			if got != c.want {
				t.Fatalf("HeuristicDelay(%v, %q) = %v, want %v", c.isPeak, c.weather, got, c.want)
			}
		})
	}
}
