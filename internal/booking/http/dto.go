package http

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/booking"
	"github.com/wildoats/tapechart-backend/internal/pkg/request"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	OccupantName string    `json:"occupant_name"`
	SpaceIDs     []string  `json:"space_ids"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Code:         b.Code,
		OccupantName: b.OccupantName,
		SpaceIDs:     b.Spaces.SpaceIDs(),
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

type CreateRequest struct {
	OccupantName string    `json:"occupant_name" binding:"required"`
	SpaceIDs     []string  `json:"space_ids" binding:"required,min=1,dive,uuid"`
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
	Status       string    `json:"status" binding:"omitempty,oneof=tentative confirmed"`
}

// Validate performs custom validation for CreateRequest.
func (r *CreateRequest) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

// MoveRequest relocates and/or reschedules a booking.
type MoveRequest struct {
	SpaceID  *string    `json:"space_id" binding:"omitempty,uuid"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
}

// Validate performs custom validation for MoveRequest.
func (r *MoveRequest) Validate() error {
	if r.CheckIn != nil && r.CheckOut != nil {
		if !r.CheckOut.After(*r.CheckIn) {
			return booking.ErrInvalidTimeRange
		}
	}
	return nil
}

type ListRequest struct {
	request.ListParams
	SpaceID string     `form:"space_id" binding:"omitempty,uuid"`
	Status  string     `form:"status" binding:"omitempty,oneof=tentative confirmed checked_in checked_out cancelled no_show"`
	From    *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To      *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy  string     `form:"sort_by" binding:"omitempty,oneof=check_in check_out created_at status"`
}
