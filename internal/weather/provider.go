// Package weather fetches daily forecasts for trip destinations, with a
// cached live provider and a static fallback table.
package weather

import (
	"context"
	"errors"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// MaxForecastDays is the horizon of the free OpenWeather forecast.
const MaxForecastDays = 5

var (
	// ErrMissingAPIKey is returned when no usable API key is configured or the provider rejects it.
	ErrMissingAPIKey = errors.New("weather: missing or invalid API key")
	// ErrLocationNotFound is returned when geocoding finds no match for the destination.
	ErrLocationNotFound = errors.New("weather: location not found")
	// ErrUpstream wraps transport failures and unexpected provider responses.
	ErrUpstream = errors.New("weather: provider unavailable")
)

// Provider is a live forecast source.
type Provider interface {
	Name() string
	Forecast(ctx context.Context, destination string, days int) ([]model.WeatherForecast, error)
}

// ClampDays bounds a requested number of days to 1..MaxForecastDays.
func ClampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

// IsProviderFailure reports whether err says something about provider health.
// Configuration and lookup errors do not.
func IsProviderFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrMissingAPIKey),
		errors.Is(err, ErrLocationNotFound),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}
