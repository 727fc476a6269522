package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the soft-gated upload endpoint; the handler itself
// resolves the actor from the cookie.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload", h.Upload)
}
