package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildoats/tapechart-backend/internal/booking"
	"github.com/wildoats/tapechart-backend/internal/pkg/request"
	"github.com/wildoats/tapechart-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	bookings, total, err := h.service.List(c.Request.Context(), booking.Filter{
		SpaceID:  req.SpaceID,
		Status:   req.Status,
		From:     req.From,
		To:       req.To,
		Page:     req.Page,
		PageSize: req.PageSize,
		SortBy:   req.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		OccupantName: body.OccupantName,
		SpaceIDs:     body.SpaceIDs,
		CheckIn:      body.CheckIn,
		CheckOut:     body.CheckOut,
		Status:       body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(b))
}

// Move handles both space relocation and interval resize: any combination
// of space_id, check_in and check_out may be supplied.
func (h *Handler) Move(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body MoveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Move(c.Request.Context(), req.ID, booking.MoveRequest{
		SpaceID:  body.SpaceID,
		CheckIn:  body.CheckIn,
		CheckOut: body.CheckOut,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(b))
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.lifecycle(c, h.service.CheckIn)
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.lifecycle(c, h.service.CheckOut)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.lifecycle(c, h.service.Cancel)
}

func (h *Handler) NoShow(c *gin.Context) {
	h.lifecycle(c, h.service.MarkNoShow)
}

func (h *Handler) lifecycle(c *gin.Context, op func(context.Context, string) (*booking.Booking, error)) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	b, err := op(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(b))
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
