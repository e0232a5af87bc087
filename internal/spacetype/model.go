package spacetype

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "space type not found")
	ErrEmptyName    = apperror.New(http.StatusBadRequest, "space type name cannot be empty")
	ErrInvalidOrgID = apperror.New(http.StatusBadRequest, "invalid organization_id")
)

// SpaceType represents a category of bookable spaces (e.g. Double Room,
// Meeting Room, Parking Bay).
type SpaceType struct {
	ID               string
	OrganizationID   string
	OrganizationName string
	Name             string
	Description      string
	CreatedAt        time.Time
}

// Filter defines parameters for listing space types.
type Filter struct {
	OrganizationID string
	Page           int
	PageSize       int
}
