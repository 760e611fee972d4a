// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// MockTripService is a testify mock of service.TripService.
type MockTripService struct {
	mock.Mock
}

// NewMockTripService creates a mock that asserts its expectations on cleanup.
func NewMockTripService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTripService {
	m := &MockTripService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTripService) trip(args mock.Arguments) (*model.Trip, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) List(ctx context.Context) ([]model.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trip), args.Error(1)
}

func (m *MockTripService) Get(ctx context.Context, id string) (*model.Trip, error) {
	return m.trip(m.Called(ctx, id))
}

func (m *MockTripService) Create(ctx context.Context, input model.NewTrip) (*model.Trip, error) {
	return m.trip(m.Called(ctx, input))
}

func (m *MockTripService) Update(ctx context.Context, id string, patch model.TripPatch) (*model.Trip, error) {
	return m.trip(m.Called(ctx, id, patch))
}

func (m *MockTripService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripService) RefreshWeather(ctx context.Context, id string) (*model.Trip, error) {
	return m.trip(m.Called(ctx, id))
}

func (m *MockTripService) AddItemToBag(ctx context.Context, tripID, bagID string, item model.ClothingItem) (*model.Trip, error) {
	return m.trip(m.Called(ctx, tripID, bagID, item))
}

func (m *MockTripService) RemoveItemFromBag(ctx context.Context, tripID, bagID, itemID string) (*model.Trip, error) {
	return m.trip(m.Called(ctx, tripID, bagID, itemID))
}

func (m *MockTripService) IsItemPacked(ctx context.Context, tripID, itemID string) (bool, error) {
	args := m.Called(ctx, tripID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripService) PackedItemIDs(ctx context.Context, tripID string) (map[string]bool, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockTripService) Recommendations(ctx context.Context, tripID string) (*model.Recommendation, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockTripService) BagPlan(ctx context.Context, tripID string) (*model.BagPlan, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BagPlan), args.Error(1)
}
