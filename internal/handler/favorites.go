package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/middleware"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

type FavoritesHandler struct{ svc service.FavoriteService }

func NewFavoritesHandler(svc service.FavoriteService) *FavoritesHandler {
	return &FavoritesHandler{svc: svc}
}

// List godoc
// @Summary List the caller's favorites, most used first
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FavoriteResponse
// @Router /v1/favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add godoc
// @Summary Favorite a catalog item
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddFavoriteRequest true "Favorite data"
// @Success 201 {object} dto.FavoriteResponse
// @Router /v1/favorites [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	var req dto.AddFavoriteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.Add(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Remove godoc
// @Summary Remove a favorite
// @Tags favorites
// @Security BearerAuth
// @Param id path string true "Favorite ID"
// @Success 204
// @Router /v1/favorites/{id} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	if err := h.svc.Remove(c.Request.Context(), sess, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkUsed godoc
// @Summary Record a favorite being re-added to the list
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Favorite ID"
// @Success 200 {object} dto.FavoriteResponse
// @Router /v1/favorites/{id}/use [post]
func (h *FavoritesHandler) MarkUsed(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.MarkUsed(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
