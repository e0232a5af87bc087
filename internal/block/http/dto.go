package http

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/pkg/request"
)

type BlockResponse struct {
	ID         string    `json:"id"`
	SpaceID    string    `json:"space_id"`
	SpaceLabel string    `json:"space_label"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Category   string    `json:"category"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewResponse(b *block.Block) BlockResponse {
	return BlockResponse{
		ID:         b.ID,
		SpaceID:    b.SpaceID,
		SpaceLabel: b.SpaceLabel,
		StartDate:  b.StartDate.Format(time.DateOnly),
		EndDate:    b.EndDate.Format(time.DateOnly),
		Category:   string(b.Category),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
}

type CreateRequest struct {
	SpaceID   string    `json:"space_id" binding:"required,uuid"`
	StartDate time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
	Category  string    `json:"category" binding:"required,oneof=maintenance cleaning out_of_order reserved other"`
	Reason    string    `json:"reason"`
}

// Validate performs custom validation for CreateRequest.
func (r *CreateRequest) Validate() error {
	if !r.EndDate.After(r.StartDate) {
		return block.ErrInvalidRange
	}
	return nil
}

type ListRequest struct {
	request.ListParams
	SpaceID  string `form:"space_id" binding:"omitempty,uuid"`
	Category string `form:"category" binding:"omitempty,oneof=maintenance cleaning out_of_order reserved other"`
}
