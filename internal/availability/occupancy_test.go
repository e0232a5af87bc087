package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildoats/tapechart-backend/internal/booking"
)

func collect(seq func(func(DayOccupancy) bool)) []DayOccupancy {
	var out []DayOccupancy
	for d := range seq {
		out = append(out, d)
	}
	return out
}

func TestOccupancyEmptyDay(t *testing.T) {
	d := day(2024, 3, 1)
	days := collect(Occupancy(d, d, 10, nil))

	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0].Date)
	assert.Equal(t, 0, days[0].Occupied)
	assert.Equal(t, 10, days[0].Total)
	assert.Equal(t, 0, days[0].Percentage)
}

func TestOccupancyZeroInventoryIsEmpty(t *testing.T) {
	occs := []booking.Occurrence{
		{BookingID: "b1", SpaceID: "s1", Start: day(2024, 3, 1), End: day(2024, 3, 3), Status: booking.StatusConfirmed},
	}
	days := collect(Occupancy(day(2024, 3, 1), day(2024, 3, 5), 0, occs))
	assert.Empty(t, days)
}

func TestOccupancyCountsDistinctSpaces(t *testing.T) {
	occs := []booking.Occurrence{
		// Two occurrences on the same space on the same day count once.
		{BookingID: "b1", SpaceID: "s1", Start: day(2024, 3, 1), End: day(2024, 3, 3), Status: booking.StatusConfirmed},
		{BookingID: "b2", SpaceID: "s1", Start: day(2024, 3, 2), End: day(2024, 3, 4), Status: booking.StatusCheckedIn},
		{BookingID: "b3", SpaceID: "s2", Start: day(2024, 3, 2), End: day(2024, 3, 3), Status: booking.StatusConfirmed},
		// Tentative bookings do not count as occupancy.
		{BookingID: "b4", SpaceID: "s3", Start: day(2024, 3, 1), End: day(2024, 3, 5), Status: booking.StatusTentative},
	}

	days := collect(Occupancy(day(2024, 3, 1), day(2024, 3, 3), 4, occs))
	require.Len(t, days, 3)

	// 03-01: only s1
	assert.Equal(t, 1, days[0].Occupied)
	assert.Equal(t, 25, days[0].Percentage)
	// 03-02: s1 and s2
	assert.Equal(t, 2, days[1].Occupied)
	assert.Equal(t, 50, days[1].Percentage)
	// 03-03: half-open checkout day; b2 still covers it, b1 and b3 end
	assert.Equal(t, 1, days[2].Occupied)
	assert.Equal(t, 25, days[2].Percentage)
}

func TestOccupancyPercentageRounding(t *testing.T) {
	occs := []booking.Occurrence{
		{BookingID: "b1", SpaceID: "s1", Start: day(2024, 3, 1), End: day(2024, 3, 2), Status: booking.StatusConfirmed},
	}
	days := collect(Occupancy(day(2024, 3, 1), day(2024, 3, 1), 3, occs))
	require.Len(t, days, 1)
	// 1/3 => 33.33 => 33
	assert.Equal(t, 33, days[0].Percentage)

	days = collect(Occupancy(day(2024, 3, 1), day(2024, 3, 1), 6, append(occs,
		booking.Occurrence{BookingID: "b2", SpaceID: "s2", Start: day(2024, 3, 1), End: day(2024, 3, 2), Status: booking.StatusConfirmed},
		booking.Occurrence{BookingID: "b3", SpaceID: "s3", Start: day(2024, 3, 1), End: day(2024, 3, 2), Status: booking.StatusConfirmed},
		booking.Occurrence{BookingID: "b4", SpaceID: "s4", Start: day(2024, 3, 1), End: day(2024, 3, 2), Status: booking.StatusConfirmed},
		booking.Occurrence{BookingID: "b5", SpaceID: "s5", Start: day(2024, 3, 1), End: day(2024, 3, 2), Status: booking.StatusConfirmed},
	)))
	require.Len(t, days, 1)
	// 5/6 => 83.33 => 83
	assert.Equal(t, 83, days[0].Percentage)
}

func TestOccupancySequenceIsRestartable(t *testing.T) {
	occs := []booking.Occurrence{
		{BookingID: "b1", SpaceID: "s1", Start: day(2024, 3, 1), End: day(2024, 3, 4), Status: booking.StatusConfirmed},
	}
	seq := Occupancy(day(2024, 3, 1), day(2024, 3, 3), 2, occs)

	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)

	// Early break must not poison later iterations.
	for range seq {
		break
	}
	assert.Equal(t, first, collect(seq))
}
