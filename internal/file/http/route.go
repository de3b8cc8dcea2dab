package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers file serving routes. Serving is public so
// provider photos can render on the booking page; uploads are wired
// through the owning module's routes.
func RegisterRoutes(r gin.IRouter, handler *Handler) {
	group := r.Group("/files")

	group.GET("/:id", handler.ServeFile)
	group.GET("/:id/thumbnail", handler.ServeThumbnail)
}
