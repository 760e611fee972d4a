//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(backend string) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.StorageConfig{Backend: backend},
		Weather: config.WeatherConfig{CacheSize: 8, CacheTTL: time.Minute},
		Log:     config.LogConfig{Level: "error"},
	}
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name      string
		cfg       func(t *testing.T) config.Config
		wantItems bool
	}{
		{
			name: "memory backend without seed",
			cfg: func(*testing.T) config.Config {
				return testConfig(config.BackendMemory)
			},
		},
		{
			name: "memory backend with sample data",
			cfg: func(*testing.T) config.Config {
				cfg := testConfig(config.BackendMemory)
				cfg.Packing.SeedSampleData = true
				return cfg
			},
			wantItems: true,
		},
		{
			name: "badger backend with sample data",
			cfg: func(t *testing.T) config.Config {
				cfg := testConfig(config.BackendBadger)
				cfg.Storage.BadgerPath = t.TempDir()
				cfg.Packing.SeedSampleData = true
				return cfg
			},
			wantItems: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			application, err := InitializeApp(ctx, tt.cfg(t))
			require.NoError(t, err)
			defer func() { assert.NoError(t, application.Close(ctx)) }()

			w := get(application.Router, "/api/clothing")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var body struct {
				Data []json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantItems {
				assert.NotEmpty(t, body.Data)
			} else {
				assert.Empty(t, body.Data)
			}
		})
	}
}

func TestInitializeApp_HealthEndpoints(t *testing.T) {
	ctx := context.Background()
	application, err := InitializeApp(ctx, testConfig(config.BackendMemory))
	require.NoError(t, err)
	defer func() { _ = application.Close(ctx) }()

	w := get(application.Router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(application.Router, "/readyz")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report struct {
		Status string                     `json:"status"`
		Checks map[string]json.RawMessage `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "ok", report.Status)
	assert.JSONEq(t, `"ok"`, string(report.Checks["storage"]))
	assert.JSONEq(t, `"memory"`, string(report.Checks["storage_backend"]))
	assert.Contains(t, report.Checks, "weather_cache")
	assert.NotContains(t, report.Checks, "weather_circuit")
}

func TestApp_Close_NotInitialized(t *testing.T) {
	var application *App
	assert.Error(t, application.Close(context.Background()))
}
