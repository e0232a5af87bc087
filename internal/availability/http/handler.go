package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildoats/tapechart-backend/internal/availability"
	"github.com/wildoats/tapechart-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Window serves the tape-chart snapshot for an inclusive date window.
func (h *Handler) Window(c *gin.Context) {
	var req WindowQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.service.FetchWindow(c.Request.Context(), req.OrganizationID, req.From, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	days := int(req.To.Sub(req.From).Hours()/24) + 1
	dates, err := availability.DateRange(req.From, days)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWindowResponse(w, dates))
}

// Occupancy serves per-day occupancy aggregates for a date window.
func (h *Handler) Occupancy(c *gin.Context) {
	var req WindowQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	days, err := h.service.OccupancyRange(c.Request.Context(), req.OrganizationID, req.From, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	if days == nil {
		days = []availability.DayOccupancy{}
	}

	c.JSON(http.StatusOK, OccupancyResponse{Days: days})
}
