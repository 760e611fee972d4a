package http

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/weather"
)

// ForecastPreviewer returns a forecast starting today, falling back to canned data.
type ForecastPreviewer interface {
	Preview(ctx context.Context, destination string, days int) []model.WeatherForecast
}

// WeatherHandler serves standalone forecast previews.
type WeatherHandler struct {
	forecasts ForecastPreviewer
}

// NewWeatherHandler creates a WeatherHandler.
func NewWeatherHandler(forecasts ForecastPreviewer) *WeatherHandler {
	return &WeatherHandler{forecasts: forecasts}
}

// Forecast handles GET /api/weather/forecast.
//
// @Summary      Weather preview
// @Description  Returns up to 5 daily forecasts for a destination starting today. Provider problems yield fallback data marked with source "fallback".
// @Tags         Weather
// @Produce      json
// @Param        destination query string true  "City name"
// @Param        days        query int    false "Number of days (1-5)" default(5)
// @Success      200 {object} dto.SuccessResponse{data=dto.ForecastResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/weather/forecast [get]
func (h *WeatherHandler) Forecast(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))
	if destination == "" {
		respondError(c, dto.ErrDestinationRequired)
		return
	}

	days := weather.MaxForecastDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, &dto.ValidationError{Field: "days", Message: "must be a positive integer"})
			return
		}
		days = weather.ClampDays(n)
	}

	forecast := h.forecasts.Preview(c.Request.Context(), destination, days)
	NewResponseBuilder(c).SuccessOK(dto.ForecastResponse{
		Destination: destination,
		Days:        len(forecast),
		Forecast:    forecast,
	})
}
