//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/circuitbreaker"
)

func TestInitializeStorage(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(t *testing.T) config.StorageConfig
		wantName string
	}{
		{
			name: "memory",
			cfg: func(*testing.T) config.StorageConfig {
				return config.StorageConfig{Backend: config.BackendMemory}
			},
			wantName: "memory",
		},
		{
			name: "badger",
			cfg: func(t *testing.T) config.StorageConfig {
				return config.StorageConfig{Backend: config.BackendBadger, BadgerPath: t.TempDir()}
			},
			wantName: "badger",
		},
		{
			name: "unknown backend opens badger",
			cfg: func(t *testing.T) config.StorageConfig {
				return config.StorageConfig{Backend: "", BadgerPath: t.TempDir()}
			},
			wantName: "badger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			storage, err := InitializeStorage(tt.cfg(t))
			require.NoError(t, err)
			defer func() { assert.NoError(t, storage.Backend.Close(ctx)) }()

			assert.Equal(t, tt.wantName, storage.Backend.Name())
			assert.Nil(t, storage.CircuitBreaker)
			assert.NoError(t, storage.Backend.HealthCheck(ctx))
		})
	}
}

func TestNewCircuitBreaker(t *testing.T) {
	t.Run("zero thresholds keep defaults", func(t *testing.T) {
		cb := newCircuitBreaker("test-defaults", config.BreakerConfig{}, nil)
		stats := cb.GetStats()

		assert.Equal(t, "test-defaults", stats.Name)
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})

	t.Run("custom failure rule and threshold", func(t *testing.T) {
		ignored := errors.New("not a dependency failure")
		cb := newCircuitBreaker("test-custom", config.BreakerConfig{
			FailureThreshold: 1,
			Timeout:          time.Minute,
		}, func(err error) bool { return !errors.Is(err, ignored) })

		ctx := context.Background()
		_ = cb.Execute(ctx, func() error { return ignored })
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())

		_ = cb.Execute(ctx, func() error { return errors.New("boom") })
		assert.Equal(t, circuitbreaker.StateOpen, cb.State())
	})
}
