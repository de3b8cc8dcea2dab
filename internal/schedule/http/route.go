package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/schedule")

	// === Public Routes ===
	// Customers browse and validate availability before checkout; no
	// account is required.
	{
		group.GET("", h.GetSchedule)
		group.POST("/validate", h.ValidateSelection)
	}
}
