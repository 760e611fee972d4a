package weather

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/metrics"
)

// Service combines a live provider with caching, a circuit breaker and the fallback table.
type Service struct {
	provider Provider
	fallback *Fallback
	cache    *ForecastCache
	breaker  *circuitbreaker.CircuitBreaker
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCache caches successful live forecasts.
func WithCache(cache *ForecastCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithCircuitBreaker guards provider calls with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(s *Service) {
		s.breaker = cb
	}
}

// WithClock overrides the clock used to anchor previews.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a weather service. A nil provider always falls back.
func NewService(provider Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		fallback: NewFallback(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CircuitBreaker returns the provider breaker, or nil.
func (s *Service) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.breaker
}

// CacheStats returns the forecast cache counters, zero without a cache.
func (s *Service) CacheStats() CacheStats {
	if s.cache == nil {
		return CacheStats{}
	}
	return s.cache.Stats()
}

// LiveForecast asks the provider for days of forecast (clamped to 1..5) and returns its error.
func (s *Service) LiveForecast(ctx context.Context, destination string, days int) ([]model.WeatherForecast, error) {
	if s.provider == nil {
		return nil, ErrMissingAPIKey
	}
	days = ClampDays(days)

	key := CacheKey(destination, days)
	if s.cache != nil {
		if forecast, ok := s.cache.Get(key); ok {
			metrics.RecordWeatherFetch("cache", "hit")
			return forecast, nil
		}
	}

	start := time.Now()
	var forecast []model.WeatherForecast
	fetch := func() error {
		var err error
		forecast, err = s.provider.Forecast(ctx, destination, days)
		return err
	}

	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(ctx, fetch)
	} else {
		err = fetch()
	}
	metrics.ObserveWeatherLatency(time.Since(start))

	if err != nil {
		metrics.RecordWeatherFetch("live", "error")
		return nil, err
	}
	metrics.RecordWeatherFetch("live", "success")

	if s.cache != nil && len(forecast) > 0 {
		s.cache.Set(key, forecast)
	}
	return forecast, nil
}

// ForecastForTrip returns a forecast for the trip window. It never fails:
// any provider problem yields the fallback table anchored at start.
func (s *Service) ForecastForTrip(ctx context.Context, destination string, start, end time.Time) []model.WeatherForecast {
	days := ClampDays(model.TripLengthDays(start, end))
	return s.forecastOrFallback(ctx, destination, days, start)
}

// Preview returns a forecast for destination starting today, falling back like ForecastForTrip.
func (s *Service) Preview(ctx context.Context, destination string, days int) []model.WeatherForecast {
	return s.forecastOrFallback(ctx, destination, ClampDays(days), s.now())
}

func (s *Service) forecastOrFallback(ctx context.Context, destination string, days int, anchor time.Time) []model.WeatherForecast {
	forecast, err := s.LiveForecast(ctx, destination, days)
	if err == nil && len(forecast) > 0 {
		return forecast
	}

	event := log.Ctx(ctx).Warn()
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		event = log.Ctx(ctx).Debug()
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		event = log.Ctx(ctx).Info()
	}
	event.Err(err).
		Str("destination", destination).
		Int("days", days).
		Msg("Using fallback weather forecast")

	metrics.RecordWeatherFetch("fallback", "success")
	return s.fallback.Forecast(destination, anchor, days)
}
