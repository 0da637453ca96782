package handler

import (
	"net/http"

	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yuda85/family-ops-sub001/internal/apierror"
	"github.com/yuda85/family-ops-sub001/internal/middleware"
	"github.com/yuda85/family-ops-sub001/internal/realtime"
)

type SyncHandler struct{ hub *realtime.Hub }

func NewSyncHandler(hub *realtime.Hub) *SyncHandler { return &SyncHandler{hub: hub} }

// Connect godoc
// @Summary Upgrade to a WebSocket delivering family sync events
// @Tags sync
// @Security BearerAuth
// @Success 101
// @Router /v1/sync [get]
func (h *SyncHandler) Connect(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess.FamilyID == uuid.Nil {
		c.JSON(http.StatusForbidden, apierror.New("No active family"))
		return
	}

	conn, err := ws.Accept(c.Writer, c.Request, &ws.AcceptOptions{
		// Mobile clients connect from app webviews with arbitrary origins.
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sync: websocket upgrade failed")
		return
	}
	defer conn.Close(ws.StatusInternalError, "connection closed")

	client := realtime.NewClient(h.hub, conn, sess.FamilyID)
	client.Run(c.Request.Context())

	conn.Close(ws.StatusNormalClosure, "")
}
