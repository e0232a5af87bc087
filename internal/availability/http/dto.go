package http

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/availability"
	"github.com/wildoats/tapechart-backend/internal/pkg/request"
	spaceHttp "github.com/wildoats/tapechart-backend/internal/space/http"
)

type WindowQuery struct {
	request.DateWindowRequest
	OrganizationID string `form:"organization_id" binding:"required,uuid"`
}

type WindowBookingResponse struct {
	BookingID    string    `json:"booking_id"`
	Code         string    `json:"code"`
	OccupantName string    `json:"occupant_name"`
	SpaceID      string    `json:"space_id"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	Color        string    `json:"color"`
}

type WindowBlockResponse struct {
	ID        string `json:"id"`
	SpaceID   string `json:"space_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
	Reason    string `json:"reason,omitempty"`
	Color     string `json:"color"`
}

type WindowResponse struct {
	From     string                    `json:"from"`
	To       string                    `json:"to"`
	Dates    []string                  `json:"dates"`
	Spaces   []spaceHttp.SpaceResponse `json:"spaces"`
	Bookings []WindowBookingResponse   `json:"bookings"`
	Blocks   []WindowBlockResponse     `json:"blocks"`
}

func NewWindowResponse(w *availability.Window, dates []string) WindowResponse {
	resp := WindowResponse{
		From:     w.From.Format(time.DateOnly),
		To:       w.To.Format(time.DateOnly),
		Dates:    dates,
		Spaces:   make([]spaceHttp.SpaceResponse, len(w.Spaces)),
		Bookings: make([]WindowBookingResponse, len(w.Bookings)),
		Blocks:   make([]WindowBlockResponse, len(w.Blocks)),
	}
	for i, sp := range w.Spaces {
		resp.Spaces[i] = spaceHttp.NewResponse(sp)
	}
	for i, b := range w.Bookings {
		resp.Bookings[i] = WindowBookingResponse{
			BookingID:    b.BookingID,
			Code:         b.Code,
			OccupantName: b.OccupantName,
			SpaceID:      b.SpaceID,
			CheckIn:      b.Start,
			CheckOut:     b.End,
			Status:       string(b.Status),
			Color:        b.Color,
		}
	}
	for i, b := range w.Blocks {
		resp.Blocks[i] = WindowBlockResponse{
			ID:        b.ID,
			SpaceID:   b.SpaceID,
			StartDate: b.StartDate.Format(time.DateOnly),
			EndDate:   b.EndDate.Format(time.DateOnly),
			Category:  string(b.Category),
			Reason:    b.Reason,
			Color:     b.Color,
		}
	}
	return resp
}

type OccupancyResponse struct {
	Days []availability.DayOccupancy `json:"days"`
}
