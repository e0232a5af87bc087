package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Move) // move and/or resize
		group.POST("/:id/check-in", h.CheckIn)
		group.POST("/:id/check-out", h.CheckOut)
		group.POST("/:id/cancel", h.Cancel)
		group.POST("/:id/no-show", h.NoShow)
		group.DELETE("/:id", h.Delete)
	}
}
