package events

import (
	"net/http"

	"codexgallery/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Serve handles GET /ws — upgrades the connection and attaches it to the hub.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "WebSocket upgrade failed")
		return
	}
	h.hub.ServeWS(conn)
}
