package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers block-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/blocks")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Delete)
	}
}
