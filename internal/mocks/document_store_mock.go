// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDocumentStore is a testify mock of repository.DocumentStore.
type MockDocumentStore[T any] struct {
	mock.Mock
}

func (m *MockDocumentStore[T]) Load(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockDocumentStore[T]) SaveAll(ctx context.Context, items []T) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
