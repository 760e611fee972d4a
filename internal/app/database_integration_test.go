//go:build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/domain/model"
)

func TestInitializeStorage_MongoDB(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{
		Backend:       config.BackendMongoDB,
		MongoURI:      getSharedContainerURI(),
		MongoDatabase: sanitizeDBNameForApp(t.Name()),
		MongoBreaker:  config.BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1},
	}

	storage, err := InitializeStorage(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, storage.Backend.Close(ctx)) }()

	assert.Equal(t, "mongodb", storage.Backend.Name())
	require.NotNil(t, storage.CircuitBreaker)
	assert.Equal(t, "storage", storage.CircuitBreaker.GetStats().Name)
	require.NoError(t, storage.Backend.HealthCheck(ctx))

	items := []model.ClothingItem{{ID: "c1", Name: "Rain jacket", Category: model.CategoryJackets}}
	require.NoError(t, storage.Backend.Clothing().SaveAll(ctx, items))

	loaded, err := storage.Backend.Clothing().Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Rain jacket", loaded[0].Name)
}

func TestInitializeStorage_MongoDBUnreachable(t *testing.T) {
	_, err := InitializeStorage(config.StorageConfig{
		Backend:       config.BackendMongoDB,
		MongoURI:      "mongodb://127.0.0.1:1",
		MongoDatabase: "unreachable",
	})
	assert.Error(t, err)
}
