package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/weather"
)

// InitializeWeather builds the forecast service. Without an API key every
// forecast comes from the fallback table.
func InitializeWeather(cfg config.WeatherConfig) *weather.Service {
	var opts []weather.Option
	if cfg.CacheSize > 0 && cfg.CacheTTL > 0 {
		opts = append(opts, weather.WithCache(weather.NewForecastCache(cfg.CacheSize, cfg.CacheTTL)))
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY not set, using fallback forecasts")
		return weather.NewService(nil, opts...)
	}

	client := weather.NewOpenWeatherClient(weather.OpenWeatherConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.HTTPTimeout,
	})
	if !client.HasValidKey() {
		log.Warn().Msg("OPENWEATHER_API_KEY looks malformed, live forecasts will fall back")
	}
	opts = append(opts, weather.WithCircuitBreaker(newCircuitBreaker("weather", cfg.Breaker, weather.IsProviderFailure)))
	return weather.NewService(client, opts...)
}
