package file

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes mounts the read-only surface.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/files", h.List)
	r.GET("/cdn/:id", h.ServeCDN)
}

// RegisterStaffRoutes mounts the write surface under the auth gate.
func RegisterStaffRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/files", h.Create)
	r.DELETE("/files", h.Delete)
}
