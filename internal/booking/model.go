package booking

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrConflict          = apperror.New(http.StatusConflict, "requested interval conflicts with an existing occupancy")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "check-out must be after check-in")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking status does not allow this operation")
	ErrSpaceNotFound     = apperror.New(http.StatusNotFound, "space not found")
	ErrNoSpace           = apperror.New(http.StatusBadRequest, "booking must reference at least one space")
	ErrEmptyOccupant     = apperror.New(http.StatusBadRequest, "occupant name cannot be empty")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusTentative  Status = "tentative"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusTentative, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// SpaceRef identifies the space(s) a booking occupies. The source data has
// two shapes: a direct space_id column, or one or more rows in the
// booking_spaces join table. The union is resolved once at ingestion so
// that downstream interval logic only ever sees flat (booking, space)
// occurrence pairs.
type SpaceRef struct {
	direct string
	joined []string
}

// DirectSpaceRef builds a reference from the direct space_id column.
func DirectSpaceRef(spaceID string) SpaceRef {
	return SpaceRef{direct: spaceID}
}

// JoinedSpaceRef builds a reference from join-table rows. The list must be
// non-empty.
func JoinedSpaceRef(spaceIDs []string) (SpaceRef, error) {
	if len(spaceIDs) == 0 {
		return SpaceRef{}, ErrNoSpace
	}
	return SpaceRef{joined: spaceIDs}, nil
}

// SpaceIDs returns the space identifiers the booking occupies.
func (r SpaceRef) SpaceIDs() []string {
	if r.direct != "" {
		return []string{r.direct}
	}
	return r.joined
}

// Primary returns the first referenced space.
func (r SpaceRef) Primary() string {
	ids := r.SpaceIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// IsZero reports whether the reference names no space at all.
func (r SpaceRef) IsZero() bool {
	return r.direct == "" && len(r.joined) == 0
}

// Booking is an occupancy commitment over the half-open interval
// [CheckIn, CheckOut).
type Booking struct {
	ID           string
	Code         string
	OccupantName string
	Spaces       SpaceRef
	CheckIn      time.Time
	CheckOut     time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Occurrence is one flattened (booking, space) pair. All conflict and
// occupancy computations run over occurrences, never over raw bookings.
type Occurrence struct {
	BookingID    string
	Code         string
	OccupantName string
	SpaceID      string
	Start        time.Time
	End          time.Time
	Status       Status
}

// Occurrences expands the booking into one entry per referenced space.
func (b *Booking) Occurrences() []Occurrence {
	ids := b.Spaces.SpaceIDs()
	occs := make([]Occurrence, len(ids))
	for i, id := range ids {
		occs[i] = Occurrence{
			BookingID:    b.ID,
			Code:         b.Code,
			OccupantName: b.OccupantName,
			SpaceID:      id,
			Start:        b.CheckIn,
			End:          b.CheckOut,
			Status:       b.Status,
		}
	}
	return occs
}

// Filter defines parameters for listing bookings.
type Filter struct {
	SpaceID  string
	Status   string
	From     *time.Time // bookings ending at or after this instant
	To       *time.Time // bookings starting at or before this instant
	Page     int
	PageSize int
	SortBy   string
}
