package availability

import (
	"iter"
	"math"
	"time"

	"github.com/wildoats/tapechart-backend/internal/booking"
)

// DayOccupancy is the occupancy aggregate for one calendar day.
type DayOccupancy struct {
	Date       string `json:"date"`
	Occupied   int    `json:"occupied"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// Occupancy yields one DayOccupancy per calendar day in [from, to]
// inclusive. A space counts as occupied on day D when at least one active
// (confirmed or checked-in) occurrence covers it, i.e. start <= D < end.
// The sequence is lazy and restartable; when totalSpaces is zero it is
// empty, so the percentage division never runs.
func Occupancy(from, to time.Time, totalSpaces int, bookings []booking.Occurrence) iter.Seq[DayOccupancy] {
	return func(yield func(DayOccupancy) bool) {
		if totalSpaces <= 0 {
			return
		}

		first := truncateToDay(from)
		last := truncateToDay(to)

		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			occupied := map[string]struct{}{}
			for _, occ := range bookings {
				if occ.Status != booking.StatusConfirmed && occ.Status != booking.StatusCheckedIn {
					continue
				}
				if !occ.Start.After(day) && day.Before(occ.End) {
					occupied[occ.SpaceID] = struct{}{}
				}
			}

			pct := int(math.Round(float64(len(occupied)) / float64(totalSpaces) * 100))
			d := DayOccupancy{
				Date:       day.Format(time.DateOnly),
				Occupied:   len(occupied),
				Total:      totalSpaces,
				Percentage: pct,
			}
			if !yield(d) {
				return
			}
		}
	}
}
