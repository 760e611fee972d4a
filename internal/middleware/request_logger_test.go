package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/internal/logger"
)

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   zerolog.Level
	}{
		{"2xx is info", 200, zerolog.InfoLevel},
		{"3xx is info", 301, zerolog.InfoLevel},
		{"4xx is warn", 400, zerolog.WarnLevel},
		{"409 is warn", 409, zerolog.WarnLevel},
		{"5xx is error", 500, zerolog.ErrorLevel},
		{"503 is error", 503, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelForStatus(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{"successful request", http.StatusOK, "info"},
		{"client error", http.StatusConflict, "warn"},
		{"server error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter(&buf, "debug", false)
			t.Cleanup(func() { logger.InitWithWriter(&bytes.Buffer{}, "info", false) })

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/api/trips", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			req.Header.Set(RequestIDHeader, "req-42")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var line map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "HTTP request", line["message"])
			assert.Equal(t, "req-42", line["request_id"])
			assert.Equal(t, "GET", line["method"])
			assert.Equal(t, "/api/trips", line["path"])
			assert.EqualValues(t, tt.statusCode, line["status_code"])
			assert.Contains(t, line, "duration_ms")
		})
	}
}
