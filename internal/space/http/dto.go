package http

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/request"
	"github.com/wildoats/tapechart-backend/internal/space"
)

type SpaceResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	SpaceTypeID    string    `json:"space_type_id"`
	SpaceTypeName  string    `json:"space_type_name"`
	Label          string    `json:"label"`
	ZoneTag        string    `json:"zone_tag,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewResponse(sp *space.Space) SpaceResponse {
	return SpaceResponse{
		ID:             sp.ID,
		OrganizationID: sp.OrganizationID,
		SpaceTypeID:    sp.SpaceTypeID,
		SpaceTypeName:  sp.SpaceTypeName,
		Label:          sp.Label,
		ZoneTag:        sp.ZoneTag,
		Status:         string(sp.Status),
		CreatedAt:      sp.CreatedAt,
	}
}

type CreateRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	SpaceTypeID    string `json:"space_type_id" binding:"required,uuid"`
	Label          string `json:"label" binding:"required"`
	ZoneTag        string `json:"zone_tag"`
	Status         string `json:"status" binding:"omitempty,oneof=available occupied reserved maintenance cleaning out_of_order"`
}

type UpdateRequest struct {
	Label   *string `json:"label" binding:"omitempty"`
	ZoneTag *string `json:"zone_tag" binding:"omitempty"`
	Status  *string `json:"status" binding:"omitempty,oneof=available occupied reserved maintenance cleaning out_of_order"`
}

type ListRequest struct {
	request.ListParams
	OrganizationID string `form:"organization_id" binding:"omitempty,uuid"`
	SpaceTypeID    string `form:"space_type_id" binding:"omitempty,uuid"`
	ZoneTag        string `form:"zone_tag"`
	Status         string `form:"status" binding:"omitempty,oneof=available occupied reserved maintenance cleaning out_of_order"`
}
