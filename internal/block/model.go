package block

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "block not found")
	ErrInvalidCategory = apperror.New(http.StatusBadRequest, "invalid block category")
	ErrInvalidRange    = apperror.New(http.StatusBadRequest, "block end date must be after start date")
	ErrInvalidSpace    = apperror.New(http.StatusBadRequest, "invalid space_id")
)

// Category classifies why a space is held out of the booking inventory.
type Category string

const (
	CategoryMaintenance Category = "maintenance"
	CategoryCleaning    Category = "cleaning"
	CategoryOutOfOrder  Category = "out_of_order"
	CategoryReserved    Category = "reserved"
	CategoryOther       Category = "other"
)

// ValidCategory reports whether c is one of the known block categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryMaintenance, CategoryCleaning, CategoryOutOfOrder,
		CategoryReserved, CategoryOther:
		return true
	}
	return false
}

// Block is an administrative hold on a space over a half-open date
// range [StartDate, EndDate), independent of any booking.
type Block struct {
	ID         string
	SpaceID    string
	SpaceLabel string
	StartDate  time.Time
	EndDate    time.Time
	Category   Category
	Reason     string
	CreatedAt  time.Time
}

// Filter defines parameters for listing blocks.
type Filter struct {
	SpaceID  string
	Category string
	Page     int
	PageSize int
}
