package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/middleware"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Search godoc
// @Summary Search the family catalog
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Success 200 {array} dto.CatalogItemResponse
// @Router /v1/catalog/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.Search(c.Request.Context(), sess, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Categorize godoc
// @Summary Resolve the category for a free-text item name
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param name query string true "Item name"
// @Success 200 {object} map[string]string
// @Router /v1/catalog/categorize [get]
func (h *CatalogHandler) Categorize(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	category, err := h.svc.Categorize(c.Request.Context(), sess, c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": string(category)})
}

// Seed godoc
// @Summary Seed the default catalog for a new family
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SeedResponse
// @Router /v1/catalog/seed [post]
func (h *CatalogHandler) Seed(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.SeedIfEmpty(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary Add a custom catalog item
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddCatalogItemRequest true "Item data"
// @Success 201 {object} dto.CatalogItemResponse
// @Router /v1/catalog/items [post]
func (h *CatalogHandler) AddItem(c *gin.Context) {
	var req dto.AddCatalogItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.AddCustomItem(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdatePrice godoc
// @Summary Update an item's estimated price
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog item ID"
// @Param body body dto.UpdatePriceRequest true "New price"
// @Success 200 {object} dto.CatalogItemResponse
// @Router /v1/catalog/items/{id}/price [patch]
func (h *CatalogHandler) UpdatePrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.UpdatePrice(c.Request.Context(), sess, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PriceHistory godoc
// @Summary List price changes of a catalog item
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog item ID"
// @Success 200 {array} dto.PriceChangeResponse
// @Router /v1/catalog/items/{id}/price-history [get]
func (h *CatalogHandler) PriceHistory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.ListPriceChanges(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
