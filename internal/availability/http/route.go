package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers tape-chart and occupancy routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/tape-chart", h.Window)
	g.GET("/occupancy", h.Occupancy)
}
