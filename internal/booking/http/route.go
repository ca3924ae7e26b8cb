package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/calendar", h.Calendar)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Cancel)
	}

	// === Admin Routes ===
	admin := g.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/bookings", h.ListAll)
	}
}
