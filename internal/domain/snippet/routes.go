package snippet

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/snippets", h.List)
}

func RegisterStaffRoutes(r *gin.RouterGroup, h *Handler) {
	snippets := r.Group("/snippets")
	{
		snippets.POST("", h.Create)
		snippets.PUT("/:id", h.Update)
		snippets.DELETE("/:id", h.Delete)
	}
}
