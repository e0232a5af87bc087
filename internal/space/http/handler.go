package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildoats/tapechart-backend/internal/pkg/request"
	"github.com/wildoats/tapechart-backend/internal/pkg/response"
	"github.com/wildoats/tapechart-backend/internal/space"
)

type Handler struct {
	service space.Service
}

func NewHandler(service space.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	spaces, total, err := h.service.List(c.Request.Context(), space.Filter{
		OrganizationID: req.OrganizationID,
		SpaceTypeID:    req.SpaceTypeID,
		ZoneTag:        req.ZoneTag,
		Status:         req.Status,
		Page:           req.Page,
		PageSize:       req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SpaceResponse, len(spaces))
	for i, sp := range spaces {
		items[i] = NewResponse(sp)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	sp, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(sp))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sp, err := h.service.Create(c.Request.Context(), space.CreateRequest{
		OrganizationID: body.OrganizationID,
		SpaceTypeID:    body.SpaceTypeID,
		Label:          body.Label,
		ZoneTag:        body.ZoneTag,
		Status:         body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(sp))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sp, err := h.service.Update(c.Request.Context(), req.ID, space.UpdateRequest{
		Label:   body.Label,
		ZoneTag: body.ZoneTag,
		Status:  body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(sp))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
