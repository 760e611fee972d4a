// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// MockClothingService is a testify mock of service.ClothingService.
type MockClothingService struct {
	mock.Mock
}

// NewMockClothingService creates a mock that asserts its expectations on cleanup.
func NewMockClothingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClothingService {
	m := &MockClothingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClothingService) items(args mock.Arguments) ([]model.ClothingItem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClothingItem), args.Error(1)
}

func (m *MockClothingService) item(args mock.Arguments) (*model.ClothingItem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClothingItem), args.Error(1)
}

func (m *MockClothingService) List(ctx context.Context) ([]model.ClothingItem, error) {
	return m.items(m.Called(ctx))
}

func (m *MockClothingService) Get(ctx context.Context, id string) (*model.ClothingItem, error) {
	return m.item(m.Called(ctx, id))
}

func (m *MockClothingService) Add(ctx context.Context, item model.ClothingItem) (*model.ClothingItem, error) {
	return m.item(m.Called(ctx, item))
}

func (m *MockClothingService) Update(ctx context.Context, id string, patch model.ClothingItemPatch) (*model.ClothingItem, error) {
	return m.item(m.Called(ctx, id, patch))
}

func (m *MockClothingService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClothingService) Search(ctx context.Context, query string) ([]model.ClothingItem, error) {
	return m.items(m.Called(ctx, query))
}

func (m *MockClothingService) FilterBySeason(ctx context.Context, season model.Season) ([]model.ClothingItem, error) {
	return m.items(m.Called(ctx, season))
}

func (m *MockClothingService) FilterByCategory(ctx context.Context, category model.Category) ([]model.ClothingItem, error) {
	return m.items(m.Called(ctx, category))
}

func (m *MockClothingService) Categories() []model.Category {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Category)
}

func (m *MockClothingService) Closet(ctx context.Context) (map[model.Season][]model.ClothingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.Season][]model.ClothingItem), args.Error(1)
}

func (m *MockClothingService) SeedSampleData(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
