package app

import (
	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/repository"
	"github.com/guttosm/packing-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Clothing *service.ClothingServiceImpl
	Trips    *service.TripServiceImpl
}

// InitializeServices builds the catalog and trip services on top of backend.
func InitializeServices(backend repository.Backend, forecasts service.ForecastSource, cfg config.PackingConfig) *ServiceComponents {
	clothing := service.NewClothingService(backend.Clothing())
	trips := service.NewTripService(backend.Trips(), clothing, forecasts,
		service.WithCrossBagUniqueness(cfg.StrictBagUniqueness),
	)
	return &ServiceComponents{
		Clothing: clothing,
		Trips:    trips,
	}
}
