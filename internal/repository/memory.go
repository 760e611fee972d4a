package repository

import (
	"context"
	"sync"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// MemoryStore keeps a collection as encoded JSON so callers never share slices with the store.
type MemoryStore[T any] struct {
	key  string
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore creates an empty in-memory document.
func NewMemoryStore[T any](key string) *MemoryStore[T] {
	return &MemoryStore[T]{key: key}
}

// Load returns a fresh copy of the stored collection.
func (s *MemoryStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decodeCollection[T](s.key, s.data)
}

// SaveAll replaces the stored collection.
func (s *MemoryStore[T]) SaveAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeCollection(s.key, items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// MemoryBackend holds both collections in process memory.
type MemoryBackend struct {
	clothing *MemoryStore[model.ClothingItem]
	trips    *MemoryStore[model.Trip]
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		clothing: NewMemoryStore[model.ClothingItem](ClothingItemsKey),
		trips:    NewMemoryStore[model.Trip](TripsKey),
	}
}

func (b *MemoryBackend) Name() string                          { return "memory" }
func (b *MemoryBackend) Clothing() ClothingStore               { return b.clothing }
func (b *MemoryBackend) Trips() TripStore                      { return b.trips }
func (b *MemoryBackend) HealthCheck(ctx context.Context) error { return ctx.Err() }
func (b *MemoryBackend) Close(context.Context) error           { return nil }
