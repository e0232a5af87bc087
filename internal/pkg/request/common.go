package request

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var ErrInvalidDateWindow = apperror.New(http.StatusBadRequest, "'to' date must not be before 'from' date")

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams holds the pagination query parameters shared by list endpoints.
type ListParams struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps pagination values to sane defaults.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}

// DateWindowRequest binds an inclusive calendar-date window (YYYY-MM-DD).
type DateWindowRequest struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// Validate rejects inverted windows.
func (r *DateWindowRequest) Validate() error {
	if r.To.Before(r.From) {
		return ErrInvalidDateWindow
	}
	return nil
}
