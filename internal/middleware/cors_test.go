package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "preflight from default origin",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "GET from configured origin",
			origins:        []string{" https://packing.example.com/ "},
			method:         http.MethodGet,
			origin:         "https://packing.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://packing.example.com",
		},
		{
			name:           "GET from unknown origin is rejected",
			origins:        []string{"https://packing.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "wildcard allows any origin",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://anywhere.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			name:           "same-origin request without Origin header",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCleanOrigins(t *testing.T) {
	assert.Equal(t, DefaultCORSOrigins, cleanOrigins(nil))
	assert.Equal(t, DefaultCORSOrigins, cleanOrigins([]string{" ", ""}))
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"},
		cleanOrigins([]string{"https://a.example.com/", " https://b.example.com"}))
}
