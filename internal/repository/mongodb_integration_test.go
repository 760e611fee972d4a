//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/testutil"
)

func TestMongoStore_Integration(t *testing.T) {
	t.Parallel()
	db := setupTestDBFromSharedContainer(t)

	runTripStoreContract(t, NewMongoStore[model.Trip](db, TripsKey))
}

func TestMongoBackend_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDBFromSharedContainer(t)

	backend := NewMongoBackend(db, circuitbreaker.New(circuitbreaker.DefaultConfig("mongodb")))
	assert.Equal(t, "mongodb", backend.Name())
	require.NoError(t, backend.HealthCheck(ctx))

	items := testutil.Items("shirt", model.CategoryShirts, 2)
	require.NoError(t, backend.Clothing().SaveAll(ctx, items))

	loaded, err := backend.Clothing().Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)

	t.Run("one document per collection key", func(t *testing.T) {
		count, err := db.Documents.CountDocuments(ctx, bson.M{"_id": ClothingItemsKey})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, backend.Clothing().SaveAll(ctx, items[:1]))
		count, err = db.Documents.CountDocuments(ctx, bson.M{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
