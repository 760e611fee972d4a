// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// MockForecastPreviewer is a testify mock of the weather preview port used by the HTTP layer.
type MockForecastPreviewer struct {
	mock.Mock
}

func (m *MockForecastPreviewer) Preview(ctx context.Context, destination string, days int) []model.WeatherForecast {
	args := m.Called(ctx, destination, days)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.WeatherForecast)
}
