package organization

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "organization not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "organization name cannot be empty")
)

// Organization represents a property or brand owning a space inventory.
type Organization struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// Filter defines parameters for listing organizations.
type Filter struct {
	Page     int
	PageSize int
}
