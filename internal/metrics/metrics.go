// Package metrics provides Prometheus metrics collection for the packing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RecommendationsTotal counts generated packing recommendations by trip length.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of packing recommendations generated",
		},
		[]string{"trip_length"},
	)

	// RecommendationItems tracks how many items a recommendation contains.
	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_items",
			Help:    "Number of items in a packing recommendation",
			Buckets: []float64{0, 5, 10, 15, 20, 30, 40, 60},
		},
	)

	// WeatherFetchTotal counts forecast lookups by source and result.
	WeatherFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fetch_total",
			Help: "Total number of weather forecast lookups",
		},
		[]string{"source", "result"},
	)

	// WeatherFetchDuration tracks live provider latency.
	WeatherFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weather_fetch_duration_seconds",
			Help:    "Live weather provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// BagOperationsTotal counts bag mutations by operation and result.
	BagOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bag_operations_total",
			Help: "Total number of bag add/remove operations",
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks forecast cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRecommendation records a generated recommendation.
func RecordRecommendation(tripLength string, items int) {
	RecommendationsTotal.WithLabelValues(tripLength).Inc()
	RecommendationItems.Observe(float64(items))
}

// RecordWeatherFetch records a forecast lookup. source is live, fallback or cache.
func RecordWeatherFetch(source, result string) {
	WeatherFetchTotal.WithLabelValues(source, result).Inc()
}

// ObserveWeatherLatency records the duration of a live provider call.
func ObserveWeatherLatency(d time.Duration) {
	WeatherFetchDuration.Observe(d.Seconds())
}

// RecordBagOperation records a bag mutation. result is ok or the rejection reason.
func RecordBagOperation(operation, result string) {
	BagOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetCircuitBreakerState publishes a breaker state as a gauge value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
