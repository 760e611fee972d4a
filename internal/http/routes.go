package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of API routes mounted under /api.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegisterRoutes mounts the catalog routes.
func (h *ClothingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clothing := rg.Group("/clothing")
	clothing.GET("", h.List)
	clothing.POST("", h.Create)
	clothing.GET("/categories", h.Categories)
	clothing.GET("/closet", h.Closet)
	clothing.POST("/seed", h.Seed)
	clothing.GET("/:id", h.Get)
	clothing.PATCH("/:id", h.Update)
	clothing.DELETE("/:id", h.Delete)
}

// RegisterRoutes mounts the trip and packing routes.
func (h *TripHandler) RegisterRoutes(rg *gin.RouterGroup) {
	trips := rg.Group("/trips")
	trips.GET("", h.List)
	trips.POST("", h.Create)
	trips.GET("/:id", h.Get)
	trips.PATCH("/:id", h.Update)
	trips.DELETE("/:id", h.Delete)
	trips.POST("/:id/weather/refresh", h.RefreshWeather)
	trips.GET("/:id/recommendations", h.Recommendations)
	trips.GET("/:id/bag-plan", h.BagPlan)
	trips.POST("/:id/bags/:bagId/items", h.AddItem)
	trips.DELETE("/:id/bags/:bagId/items/:itemId", h.RemoveItem)
	trips.GET("/:id/items/:itemId/packed", h.IsPacked)
}

// RegisterRoutes mounts the weather preview.
func (h *WeatherHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/weather/forecast", h.Forecast)
}
