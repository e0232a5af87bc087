package space

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "space not found")
	ErrEmptyLabel       = apperror.New(http.StatusBadRequest, "space label cannot be empty")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid space status")
	ErrInvalidSpaceType = apperror.New(http.StatusBadRequest, "invalid space_type_id")
	ErrInvalidOrgID     = apperror.New(http.StatusBadRequest, "invalid organization_id")
)

// Status is the housekeeping state of a space. It is independent of the
// booking timeline; a space can be "available" and still fully booked.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
	StatusCleaning    Status = "cleaning"
	StatusOutOfOrder  Status = "out_of_order"
)

// ValidStatus reports whether s is one of the known space statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved,
		StatusMaintenance, StatusCleaning, StatusOutOfOrder:
		return true
	}
	return false
}

// Space represents a bookable unit (e.g. Room 101, Bay A-3, Desk 12).
type Space struct {
	ID             string
	OrganizationID string
	SpaceTypeID    string
	SpaceTypeName  string
	Label          string
	ZoneTag        string // optional floor/zone grouping, free text
	Status         Status
	CreatedAt      time.Time
}

// Filter defines parameters for listing spaces.
type Filter struct {
	OrganizationID string
	SpaceTypeID    string
	ZoneTag        string
	Status         string
	Page           int
	PageSize       int
}
