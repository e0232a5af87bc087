package http

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/request"
	"github.com/wildoats/tapechart-backend/internal/spacetype"
)

type SpaceTypeResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewResponse(st *spacetype.SpaceType) SpaceTypeResponse {
	return SpaceTypeResponse{
		ID:             st.ID,
		OrganizationID: st.OrganizationID,
		Name:           st.Name,
		Description:    st.Description,
		CreatedAt:      st.CreatedAt,
	}
}

type CreateRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
}

type UpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty"`
}

type ListRequest struct {
	request.ListParams
	OrganizationID string `form:"organization_id" binding:"omitempty,uuid"`
}
