package model

import (
	"strings"
	"time"
)

// Forecast sources.
const (
	ForecastSourceLive     = "live"
	ForecastSourceFallback = "fallback"
)

// WeatherForecast is the forecast for a single day. Temperatures are in Fahrenheit.
//
// @Description Daily weather forecast
type WeatherForecast struct {
	Date          time.Time `json:"date" bson:"date"`
	MinTemp       float64   `json:"min_temp" bson:"min_temp" example:"52"`
	MaxTemp       float64   `json:"max_temp" bson:"max_temp" example:"61"`
	Condition     string    `json:"condition" bson:"condition" example:"Rainy"`
	Precipitation int       `json:"precipitation" bson:"precipitation" example:"80"`
	Source        string    `json:"source,omitempty" bson:"source,omitempty" example:"live"`
}

// WeatherProfile is the aggregate of a multi-day forecast.
type WeatherProfile struct {
	MinTemp    float64  `json:"min_temp"`
	MaxTemp    float64  `json:"max_temp"`
	Conditions []string `json:"conditions"`
	Days       int      `json:"days"`
}

// Empty reports whether the profile was built from no forecast days.
func (p WeatherProfile) Empty() bool {
	return p.Days == 0
}

// NewWeatherProfile aggregates the lowest minimum, the highest maximum and
// the distinct lowercased conditions in first-seen order.
func NewWeatherProfile(forecast []WeatherForecast) WeatherProfile {
	profile := WeatherProfile{Conditions: []string{}}
	seen := make(map[string]bool)

	for i, day := range forecast {
		if i == 0 || day.MinTemp < profile.MinTemp {
			profile.MinTemp = day.MinTemp
		}
		if i == 0 || day.MaxTemp > profile.MaxTemp {
			profile.MaxTemp = day.MaxTemp
		}
		condition := strings.ToLower(day.Condition)
		if !seen[condition] {
			seen[condition] = true
			profile.Conditions = append(profile.Conditions, condition)
		}
		profile.Days++
	}

	return profile
}
