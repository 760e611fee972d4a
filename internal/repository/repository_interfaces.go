// Package repository persists whole entity collections as keyed documents.
package repository

import (
	"context"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// Collection keys. Each key holds the full collection as one document.
const (
	ClothingItemsKey = "packit-clothing-items"
	TripsKey         = "packit-trips"
)

// DocumentStore loads and saves an entire collection at once.
// A missing document loads as an empty collection.
type DocumentStore[T any] interface {
	Load(ctx context.Context) ([]T, error)
	SaveAll(ctx context.Context, items []T) error
}

// ClothingStore persists the clothing catalog.
type ClothingStore = DocumentStore[model.ClothingItem]

// TripStore persists trips.
type TripStore = DocumentStore[model.Trip]

// Backend opens one DocumentStore per collection key and releases shared resources on Close.
type Backend interface {
	Name() string
	Clothing() ClothingStore
	Trips() TripStore
	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
