package weather

import (
	"strings"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

type fallbackDay struct {
	min, max      float64
	condition     string
	precipitation int
}

type fallbackCity struct {
	name string
	days []fallbackDay
}

var fallbackCities = []fallbackCity{
	{name: "new york", days: []fallbackDay{
		{65, 78, "Partly Cloudy", 20},
		{68, 82, "Sunny", 0},
		{70, 85, "Sunny", 0},
	}},
	{name: "london", days: []fallbackDay{
		{55, 65, "Rainy", 80},
		{52, 62, "Cloudy", 40},
		{50, 60, "Rainy", 90},
	}},
	{name: "miami", days: []fallbackDay{
		{78, 88, "Sunny", 10},
		{80, 90, "Partly Cloudy", 20},
		{82, 92, "Sunny", 0},
	}},
	{name: "denver", days: []fallbackDay{
		{45, 65, "Sunny", 0},
		{40, 60, "Partly Cloudy", 10},
		{35, 55, "Cloudy", 30},
	}},
}

var defaultFallbackDays = []fallbackDay{
	{65, 75, "Partly Cloudy", 20},
	{65, 75, "Partly Cloudy", 20},
	{65, 75, "Partly Cloudy", 20},
}

// Fallback serves canned forecasts when the live provider cannot.
type Fallback struct{}

// NewFallback returns the static fallback table.
func NewFallback() *Fallback {
	return &Fallback{}
}

// Forecast returns up to limit days starting at start for the first city
// matching destination, or a mild default when nothing matches. The table
// holds three days; a non-positive limit returns all of them.
func (f *Fallback) Forecast(destination string, start time.Time, limit int) []model.WeatherForecast {
	days := defaultFallbackDays
	if city, ok := matchFallbackCity(destination); ok {
		days = city.days
	}
	if limit > 0 && limit < len(days) {
		days = days[:limit]
	}

	anchor := model.DateOnly(start)
	out := make([]model.WeatherForecast, 0, len(days))
	for i, d := range days {
		out = append(out, model.WeatherForecast{
			Date:          anchor.AddDate(0, 0, i),
			MinTemp:       d.min,
			MaxTemp:       d.max,
			Condition:     d.condition,
			Precipitation: d.precipitation,
			Source:        model.ForecastSourceFallback,
		})
	}
	return out
}

func matchFallbackCity(destination string) (fallbackCity, bool) {
	normalized := strings.ToLower(strings.TrimSpace(destination))
	if normalized == "" {
		return fallbackCity{}, false
	}
	for _, city := range fallbackCities {
		if strings.Contains(normalized, city.name) || strings.Contains(city.name, normalized) {
			return city, true
		}
	}
	return fallbackCity{}, false
}
