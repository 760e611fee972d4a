package repository

import (
	"context"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
)

// DocumentStoreWithCircuitBreaker wraps a DocumentStore with circuit breaker protection.
// When the circuit is open calls fail fast with circuitbreaker.ErrCircuitOpen.
type DocumentStoreWithCircuitBreaker[T any] struct {
	store          DocumentStore[T]
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDocumentStoreWithCircuitBreaker creates a new store wrapper with circuit breaker.
func NewDocumentStoreWithCircuitBreaker[T any](store DocumentStore[T], cb *circuitbreaker.CircuitBreaker) *DocumentStoreWithCircuitBreaker[T] {
	return &DocumentStoreWithCircuitBreaker[T]{
		store:          store,
		circuitBreaker: cb,
	}
}

// Load reads the collection with circuit breaker protection.
func (r *DocumentStoreWithCircuitBreaker[T]) Load(ctx context.Context) ([]T, error) {
	var result []T
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.store.Load(ctx)
		return cbErr
	})
	return result, err
}

// SaveAll writes the collection with circuit breaker protection.
func (r *DocumentStoreWithCircuitBreaker[T]) SaveAll(ctx context.Context, items []T) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.store.SaveAll(ctx, items)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DocumentStoreWithCircuitBreaker[T]) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
