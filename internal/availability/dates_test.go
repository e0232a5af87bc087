package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	dates, err := DateRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05",
	}, dates)
}

func TestDateRangeCrossesMonthBoundary(t *testing.T) {
	dates, err := DateRange(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 3)
	require.NoError(t, err)
	// 2024 is a leap year
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, dates)
}

func TestDateRangeInvalidCount(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, err := DateRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), days)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}
