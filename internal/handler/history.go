package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuda85/family-ops-sub001/internal/middleware"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

type HistoryHandler struct{ svc service.HistoryService }

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// ListTrips godoc
// @Summary List completed shopping trips, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TripResponse
// @Router /v1/history/trips [get]
func (h *HistoryHandler) ListTrips(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.ListTrips(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTrip godoc
// @Summary Get one trip with its frozen items
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Router /v1/history/trips/{id} [get]
func (h *HistoryHandler) GetTrip(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.GetTrip(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MonthlySpend godoc
// @Summary Spend aggregated per calendar month
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MonthlySpendResponse
// @Router /v1/history/monthly [get]
func (h *HistoryHandler) MonthlySpend(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.MonthlySpend(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Accuracy godoc
// @Summary Estimation accuracy across all trips
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AccuracyResponse
// @Router /v1/history/accuracy [get]
func (h *HistoryHandler) Accuracy(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.Accuracy(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Replenishments godoc
// @Summary Items likely running out, by purchase cadence
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ReplenishmentResponse
// @Router /v1/history/replenishments [get]
func (h *HistoryHandler) Replenishments(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	resp, err := h.svc.SuggestedReplenishments(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
