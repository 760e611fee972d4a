// Package app wires configuration, storage, weather, services and the HTTP router.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/weather"
)

// App holds the wired application.
type App struct {
	Router   *gin.Engine
	Storage  *StorageComponents
	Weather  *weather.Service
	Services *ServiceComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	storage, err := InitializeStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}

	forecasts := InitializeWeather(cfg.Weather)
	services := InitializeServices(storage.Backend, forecasts, cfg.Packing)

	if cfg.Packing.SeedSampleData {
		if _, err := services.Clothing.SeedSampleData(ctx); err != nil {
			_ = storage.Backend.Close(ctx)
			return nil, err
		}
	}

	return &App{
		Router:   InitializeRouter(cfg.Server, storage, forecasts, services),
		Storage:  storage,
		Weather:  forecasts,
		Services: services,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close(ctx context.Context) error {
	if a == nil || a.Storage == nil || a.Storage.Backend == nil {
		return errors.New("app: not initialized")
	}
	return a.Storage.Backend.Close(ctx)
}
