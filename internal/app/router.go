package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/http"
	"github.com/guttosm/packing-service/internal/weather"
)

// InitializeRouter builds the health report and mounts every route group.
func InitializeRouter(cfg config.ServerConfig, storage *StorageComponents, forecasts *weather.Service, services *ServiceComponents) *gin.Engine {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("storage", http.HealthCheckFunc(storage.Backend.HealthCheck))
	healthHandler.RegisterCircuitBreaker("storage", storage.CircuitBreaker)
	healthHandler.RegisterDegradableCircuitBreaker("weather", forecasts.CircuitBreaker())
	healthHandler.RegisterInfo("storage_backend", func() interface{} { return storage.Backend.Name() })
	healthHandler.RegisterInfo("weather_cache", func() interface{} { return forecasts.CacheStats() })

	routerCfg := http.DefaultRouterConfig()
	if len(cfg.CORSOrigins) > 0 {
		routerCfg.CORSOrigins = cfg.CORSOrigins
	}
	if cfg.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.RequestTimeout
	}
	routerCfg.SwaggerUser = cfg.SwaggerUser
	routerCfg.SwaggerPass = cfg.SwaggerPass

	return http.NewRouter(routerCfg, healthHandler,
		http.NewClothingHandler(services.Clothing),
		http.NewTripHandler(services.Trips, services.Clothing),
		http.NewWeatherHandler(forecasts),
	)
}
