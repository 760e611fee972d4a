package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/mocks"
)

func TestDocumentStoreWithCircuitBreaker_PassThrough(t *testing.T) {
	ctx := context.Background()
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("mongodb"))
	store := NewDocumentStoreWithCircuitBreaker[model.Trip](NewMemoryStore[model.Trip](TripsKey), cb)

	require.NoError(t, store.SaveAll(ctx, []model.Trip{{ID: "t1", Destination: "Oslo"}}))

	trips, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Oslo", trips[0].Destination)
	assert.Same(t, cb, store.GetCircuitBreaker())
}

func TestDocumentStoreWithCircuitBreaker_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	ioErr := errors.New("connection reset")

	inner := new(mocks.MockDocumentStore[model.ClothingItem])
	inner.On("Load", mock.Anything).Return(nil, ioErr).Times(2)

	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "mongodb",
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
	})
	store := NewDocumentStoreWithCircuitBreaker[model.ClothingItem](inner, cb)

	for i := 0; i < 2; i++ {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, ioErr)
	}

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.ErrorIs(t, store.SaveAll(ctx, nil), circuitbreaker.ErrCircuitOpen)

	inner.AssertExpectations(t)
	inner.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}
