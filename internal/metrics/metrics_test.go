package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/trips/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "uses the route template as label",
			path:           "/api/trips/abc",
			label:          "/api/trips/:id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "collapses unmatched paths",
			path:           "/random/123",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("short"))

	RecordRecommendation("short", 12)

	assert.Equal(t, before+1, testutil.ToFloat64(RecommendationsTotal.WithLabelValues("short")))
}

func TestRecordWeatherFetch(t *testing.T) {
	before := testutil.ToFloat64(WeatherFetchTotal.WithLabelValues("fallback", "ok"))

	RecordWeatherFetch("fallback", "ok")
	ObserveWeatherLatency(150 * time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(WeatherFetchTotal.WithLabelValues("fallback", "ok")))
}

func TestRecordBagOperation(t *testing.T) {
	before := testutil.ToFloat64(BagOperationsTotal.WithLabelValues("add", "capacity_exceeded"))

	RecordBagOperation("add", "capacity_exceeded")

	assert.Equal(t, before+1, testutil.ToFloat64(BagOperationsTotal.WithLabelValues("add", "capacity_exceeded")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("weather", 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("weather")))
}

func TestCacheMetrics(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))

	RecordCacheOperation("get", "hit")
	UpdateCacheMetrics(50, 100)

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
	assert.Equal(t, 50.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}
