package http

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/organization"
	"github.com/wildoats/tapechart-backend/internal/pkg/request"
)

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(o *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
	}
}

// OrganizationTag is a compact embed for responses of other modules.
type OrganizationTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}

type ListRequest struct {
	request.ListParams
}
