package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/providers")

	// === Admin Routes ===
	// Provider records (including availability) are managed by admins only;
	// customers see them indirectly through the schedule endpoints.
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.POST("/:id/photo", h.UploadPhoto)
		group.DELETE("/:id", h.Delete)
	}
}
