package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/i18n"
	"github.com/guttosm/packing-service/internal/service"
)

// TripHandler serves trips, their bags and packing suggestions.
type TripHandler struct {
	trips    service.TripService
	clothing service.ClothingService
}

// NewTripHandler creates a TripHandler. The catalog resolves item IDs when packing.
func NewTripHandler(trips service.TripService, clothing service.ClothingService) *TripHandler {
	return &TripHandler{trips: trips, clothing: clothing}
}

// List handles GET /api/trips.
//
// @Summary      List trips
// @Tags         Trips
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Trip}
// @Router       /api/trips [get]
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(trips)
}

// Get handles GET /api/trips/:id.
//
// @Summary      Get a trip
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Trip}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id} [get]
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.trips.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case trip == nil:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(trip)
	}
}

// Create handles POST /api/trips.
//
// @Summary      Create a trip
// @Description  Creates a trip with a Backpack, a Carry On and a Large Luggage and attaches a forecast. Weather problems fall back to canned data and never fail creation.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTripRequest true "Trip"
// @Success      201 {object} dto.SuccessResponse{data=model.Trip}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c *gin.Context) {
	req, err := BindJSON[dto.CreateTripRequest](c)
	if err != nil {
		respondBadBody(c, err)
		return
	}
	input, err := req.ToModel()
	if err != nil {
		respondError(c, err)
		return
	}

	trip, err := h.trips.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(trip)
}

// Update handles PATCH /api/trips/:id.
//
// @Summary      Update a trip
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        id      path string true "Trip ID"
// @Param        request body dto.PatchTripRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.Trip}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id} [patch]
func (h *TripHandler) Update(c *gin.Context) {
	req, err := BindJSON[dto.PatchTripRequest](c)
	if err != nil {
		respondBadBody(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondError(c, err)
		return
	}

	trip, err := h.trips.Update(c.Request.Context(), c.Param("id"), patch)
	switch {
	case err != nil:
		respondError(c, err)
	case trip == nil:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(trip)
	}
}

// Delete handles DELETE /api/trips/:id.
//
// @Summary      Delete a trip
// @Tags         Trips
// @Param        id path string true "Trip ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id} [delete]
func (h *TripHandler) Delete(c *gin.Context) {
	deleted, err := h.trips.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case !deleted:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
	default:
		NewResponseBuilder(c).NoContent()
	}
}

// RefreshWeather handles POST /api/trips/:id/weather/refresh.
//
// @Summary      Refresh the trip forecast
// @Description  Fetches a live forecast for trips that have not ended. Provider failures keep the current forecast.
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Trip}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id}/weather/refresh [post]
func (h *TripHandler) RefreshWeather(c *gin.Context) {
	trip, err := h.trips.RefreshWeather(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case trip == nil:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(trip)
	}
}

// Recommendations handles GET /api/trips/:id/recommendations.
//
// @Summary      Packing recommendations
// @Description  Suggests catalog items from the trip length and forecast. Items already in a bag are flagged as packed.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Recommendation}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id}/recommendations [get]
func (h *TripHandler) Recommendations(c *gin.Context) {
	rec, err := h.trips.Recommendations(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case rec == nil:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(rec)
	}
}

// BagPlan handles GET /api/trips/:id/bag-plan.
//
// @Summary      Suggested bags
// @Description  Picks the bags whose free space covers the unpacked recommended items with the least spare room.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} dto.SuccessResponse{data=model.BagPlan}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id}/bag-plan [get]
func (h *TripHandler) BagPlan(c *gin.Context) {
	plan, err := h.trips.BagPlan(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case plan == nil:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(plan)
	}
}

// AddItem handles POST /api/trips/:id/bags/:bagId/items.
//
// @Summary      Pack an item
// @Description  Packs a snapshot of a catalog item into the bag. Full bags and duplicates are rejected with 409.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        id      path string true "Trip ID"
// @Param        bagId   path string true "Bag ID"
// @Param        request body dto.AddItemToBagRequest true "Item to pack"
// @Success      200 {object} dto.SuccessResponse{data=model.Trip}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/trips/{id}/bags/{bagId}/items [post]
func (h *TripHandler) AddItem(c *gin.Context) {
	req, err := BindJSON[dto.AddItemToBagRequest](c)
	if err != nil {
		respondBadBody(c, err)
		return
	}

	ctx := c.Request.Context()
	item, err := h.clothing.Get(ctx, req.ItemID)
	switch {
	case err != nil:
		respondError(c, err)
		return
	case item == nil:
		respondNotFound(c, i18n.ErrKeyClothingNotFound)
		return
	}

	trip, err := h.trips.AddItemToBag(ctx, c.Param("id"), c.Param("bagId"), *item)
	switch {
	case err != nil:
		respondError(c, err)
	case trip == nil:
		respondNotFound(c, i18n.ErrKeyBagNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(trip)
	}
}

// RemoveItem handles DELETE /api/trips/:id/bags/:bagId/items/:itemId.
//
// @Summary      Unpack an item
// @Description  Removes the item from the bag. Removing an item that is not there succeeds.
// @Tags         Packing
// @Produce      json
// @Param        id     path string true "Trip ID"
// @Param        bagId  path string true "Bag ID"
// @Param        itemId path string true "Item ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Trip}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id}/bags/{bagId}/items/{itemId} [delete]
func (h *TripHandler) RemoveItem(c *gin.Context) {
	trip, err := h.trips.RemoveItemFromBag(c.Request.Context(), c.Param("id"), c.Param("bagId"), c.Param("itemId"))
	switch {
	case err != nil:
		respondError(c, err)
	case trip == nil:
		respondNotFound(c, i18n.ErrKeyBagNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(trip)
	}
}

// IsPacked handles GET /api/trips/:id/items/:itemId/packed.
//
// @Summary      Is an item packed
// @Tags         Packing
// @Produce      json
// @Param        id     path string true "Trip ID"
// @Param        itemId path string true "Item ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackedResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/trips/{id}/items/{itemId}/packed [get]
func (h *TripHandler) IsPacked(c *gin.Context) {
	ctx := c.Request.Context()
	tripID, itemID := c.Param("id"), c.Param("itemId")

	trip, err := h.trips.Get(ctx, tripID)
	switch {
	case err != nil:
		respondError(c, err)
		return
	case trip == nil:
		respondNotFound(c, i18n.ErrKeyTripNotFound)
		return
	}

	packed, err := h.trips.IsItemPacked(ctx, tripID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.PackedResponse{TripID: tripID, ItemID: itemID, Packed: packed})
}
