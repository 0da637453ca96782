package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/middleware"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

type ListHandler struct{ svc service.ListService }

func NewListHandler(svc service.ListService) *ListHandler { return &ListHandler{svc: svc} }

// Get godoc
// @Summary Get the family's active shopping list
// @Tags list
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/list [get]
func (h *ListHandler) Get(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.GetActiveList(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary Add an item to the active list
// @Tags list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddItemRequest true "Item data"
// @Success 201 {object} dto.ListItemResponse
// @Router /v1/list/items [post]
func (h *ListHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.AddItem(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateItem godoc
// @Summary Partially update a list item
// @Tags list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param body body dto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} dto.ListItemResponse
// @Router /v1/list/items/{id} [patch]
func (h *ListHandler) UpdateItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.UpdateItem(c.Request.Context(), sess, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleItem godoc
// @Summary Toggle an item's checked state
// @Tags list
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ListItemResponse
// @Router /v1/list/items/{id}/toggle [post]
func (h *ListHandler) ToggleItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.ToggleItem(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuickCheck godoc
// @Summary One-tap check with undo support
// @Tags list
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ListItemResponse
// @Router /v1/list/items/{id}/quick-check [post]
func (h *ListHandler) QuickCheck(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.QuickCheck(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Undo godoc
// @Summary Undo the caller's most recent quick-check
// @Tags list
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListItemResponse
// @Success 204 "Nothing to undo"
// @Router /v1/list/undo [post]
func (h *ListHandler) Undo(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.UndoLastCheck(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveItem godoc
// @Summary Remove an item from the active list
// @Tags list
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204
// @Router /v1/list/items/{id} [delete]
func (h *ListHandler) RemoveItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	if err := h.svc.RemoveItem(c.Request.Context(), sess, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearChecked godoc
// @Summary Delete every checked item from the active list
// @Tags list
// @Security BearerAuth
// @Success 204
// @Router /v1/list/checked [delete]
func (h *ListHandler) ClearChecked(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if err := h.svc.ClearCheckedItems(c.Request.Context(), sess); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnterShopping godoc
// @Summary Enter supermarket mode
// @Tags list
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListResponse
// @Router /v1/list/shopping/enter [post]
func (h *ListHandler) EnterShopping(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.EnterSupermarketMode(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExitShopping godoc
// @Summary Exit supermarket mode
// @Tags list
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListResponse
// @Router /v1/list/shopping/exit [post]
func (h *ListHandler) ExitShopping(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.ExitSupermarketMode(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Complete godoc
// @Summary Complete shopping and freeze the list into a trip
// @Tags list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CompleteShoppingRequest true "Actual spend and price overrides"
// @Success 200 {object} dto.TripResponse
// @Router /v1/list/complete [post]
func (h *ListHandler) Complete(c *gin.Context) {
	var req dto.CompleteShoppingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.CompleteShopping(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
