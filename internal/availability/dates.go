package availability

import (
	"net/http"
	"time"

	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
)

var ErrInvalidRange = apperror.New(http.StatusBadRequest, "invalid date range")

// DateRange produces days consecutive calendar dates starting at start,
// formatted as ISO dates. Callers use it to build the day-by-day column
// axis of the tape chart.
func DateRange(start time.Time, days int) ([]string, error) {
	if days <= 0 {
		return nil, ErrInvalidRange
	}

	dates := make([]string, days)
	day := start
	for i := range dates {
		dates[i] = day.Format(time.DateOnly)
		day = day.AddDate(0, 0, 1)
	}
	return dates, nil
}

// truncateToDay strips the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
