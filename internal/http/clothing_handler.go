package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/i18n"
	"github.com/guttosm/packing-service/internal/service"
)

// ClothingHandler serves the clothing catalog.
type ClothingHandler struct {
	clothing service.ClothingService
}

// NewClothingHandler creates a ClothingHandler.
func NewClothingHandler(clothing service.ClothingService) *ClothingHandler {
	return &ClothingHandler{clothing: clothing}
}

// List handles GET /api/clothing.
//
// @Summary      List clothing items
// @Description  Lists the catalog in insertion order. q searches name, description and color; season and category narrow the result. Items tagged "all" match every season.
// @Tags         Clothing
// @Produce      json
// @Param        q        query string false "Case-insensitive search text"
// @Param        season   query string false "spring, summer, fall, winter or all"
// @Param        category query string false "Clothing category"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ClothingItemResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/clothing [get]
func (h *ClothingHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	season := model.Season(strings.ToLower(strings.TrimSpace(c.Query("season"))))
	category := model.Category(strings.ToLower(strings.TrimSpace(c.Query("category"))))

	if season != "" && !season.Valid() {
		respondError(c, &dto.ValidationError{Field: "season", Message: "unknown season " + string(season)})
		return
	}
	if category != "" && !category.Valid() {
		respondError(c, &dto.ValidationError{Field: "category", Message: "unknown category " + string(category)})
		return
	}

	var (
		items []model.ClothingItem
		err   error
	)
	ctx := c.Request.Context()
	switch {
	case query != "":
		items, err = h.clothing.Search(ctx, query)
	case season != "":
		items, err = h.clothing.FilterBySeason(ctx, season)
	case category != "":
		items, err = h.clothing.FilterByCategory(ctx, category)
	default:
		items, err = h.clothing.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.NewClothingItemResponses(narrow(items, query, season, category)))
}

// narrow applies the filters that did not pick the service call.
func narrow(items []model.ClothingItem, query string, season model.Season, category model.Category) []model.ClothingItem {
	out := make([]model.ClothingItem, 0, len(items))
	for _, item := range items {
		if query != "" && season != "" && !item.HasSeason(season) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Get handles GET /api/clothing/:id.
//
// @Summary      Get a clothing item
// @Tags         Clothing
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ClothingItemResponse}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/clothing/{id} [get]
func (h *ClothingHandler) Get(c *gin.Context) {
	item, err := h.clothing.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case item == nil:
		respondNotFound(c, i18n.ErrKeyClothingNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(dto.NewClothingItemResponse(*item))
	}
}

// Create handles POST /api/clothing.
//
// @Summary      Add a clothing item
// @Description  Adds an item to the catalog. Seasons default to "all".
// @Tags         Clothing
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateClothingItemRequest true "Clothing item"
// @Success      201 {object} dto.SuccessResponse{data=dto.ClothingItemResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/clothing [post]
func (h *ClothingHandler) Create(c *gin.Context) {
	req, err := BindJSON[dto.CreateClothingItemRequest](c)
	if err != nil {
		respondBadBody(c, err)
		return
	}
	item, err := req.ToModel()
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.clothing.Add(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(dto.NewClothingItemResponse(*added))
}

// Update handles PATCH /api/clothing/:id.
//
// @Summary      Update a clothing item
// @Tags         Clothing
// @Accept       json
// @Produce      json
// @Param        id      path string true "Item ID"
// @Param        request body dto.PatchClothingItemRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=dto.ClothingItemResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/clothing/{id} [patch]
func (h *ClothingHandler) Update(c *gin.Context) {
	req, err := BindJSON[dto.PatchClothingItemRequest](c)
	if err != nil {
		respondBadBody(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.clothing.Update(c.Request.Context(), c.Param("id"), patch)
	switch {
	case err != nil:
		respondError(c, err)
	case updated == nil:
		respondNotFound(c, i18n.ErrKeyClothingNotFound)
	default:
		NewResponseBuilder(c).SuccessOK(dto.NewClothingItemResponse(*updated))
	}
}

// Delete handles DELETE /api/clothing/:id.
//
// @Summary      Delete a clothing item
// @Description  Removes the item from the catalog. Snapshots already packed in bags are kept.
// @Tags         Clothing
// @Param        id path string true "Item ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/clothing/{id} [delete]
func (h *ClothingHandler) Delete(c *gin.Context) {
	deleted, err := h.clothing.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		respondError(c, err)
	case !deleted:
		respondNotFound(c, i18n.ErrKeyClothingNotFound)
	default:
		NewResponseBuilder(c).NoContent()
	}
}

// Categories handles GET /api/clothing/categories.
//
// @Summary      List clothing categories
// @Tags         Clothing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]string}
// @Router       /api/clothing/categories [get]
func (h *ClothingHandler) Categories(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.clothing.Categories())
}

// Closet handles GET /api/clothing/closet.
//
// @Summary      Catalog grouped by season
// @Description  Groups items by season. Items tagged "all" appear only in the "all" group.
// @Tags         Clothing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ClosetResponse}
// @Router       /api/clothing/closet [get]
func (h *ClothingHandler) Closet(c *gin.Context) {
	groups, err := h.clothing.Closet(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewClosetResponse(groups))
}

// Seed handles POST /api/clothing/seed.
//
// @Summary      Seed the sample wardrobe
// @Description  Inserts the sample catalog when the catalog is empty. Returns how many items were inserted.
// @Tags         Clothing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.SeedResponse}
// @Router       /api/clothing/seed [post]
func (h *ClothingHandler) Seed(c *gin.Context) {
	inserted, err := h.clothing.SeedSampleData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.SeedResponse{Inserted: inserted})
}
