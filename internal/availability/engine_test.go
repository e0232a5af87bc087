package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckConflict(t *testing.T) {
	// Space S1 has a confirmed booking [2024-06-01, 2024-06-05)
	occurrences := []booking.Occurrence{
		{
			BookingID:    "b1",
			Code:         "RSV-AAAA0001",
			OccupantName: "Jane Cooper",
			SpaceID:      "s1",
			Start:        day(2024, 6, 1),
			End:          day(2024, 6, 5),
			Status:       booking.StatusConfirmed,
		},
	}
	// Space S2 has a maintenance block [2024-07-10, 2024-07-12)
	blocks := []*block.Block{
		{
			ID:        "blk1",
			SpaceID:   "s2",
			StartDate: day(2024, 7, 10),
			EndDate:   day(2024, 7, 12),
			Category:  block.CategoryMaintenance,
			Reason:    "boiler replacement",
		},
	}

	tests := []struct {
		name      string
		spaceID   string
		start     time.Time
		end       time.Time
		excludeID string
		wantHit   bool
		wantKind  Kind
	}{
		{
			name:     "overlapping booking rejected",
			spaceID:  "s1",
			start:    day(2024, 6, 3),
			end:      day(2024, 6, 7),
			wantHit:  true,
			wantKind: KindReservation,
		},
		{
			name:    "back-to-back booking accepted",
			spaceID: "s1",
			start:   day(2024, 6, 5),
			end:     day(2024, 6, 8),
			wantHit: false,
		},
		{
			name:    "interval ending at existing start accepted",
			spaceID: "s1",
			start:   day(2024, 5, 28),
			end:     day(2024, 6, 1),
			wantHit: false,
		},
		{
			name:     "fully contained interval rejected",
			spaceID:  "s1",
			start:    day(2024, 6, 2),
			end:      day(2024, 6, 3),
			wantHit:  true,
			wantKind: KindReservation,
		},
		{
			name:    "other space unaffected",
			spaceID: "s3",
			start:   day(2024, 6, 1),
			end:     day(2024, 6, 10),
			wantHit: false,
		},
		{
			name:      "excluded booking never conflicts with itself",
			spaceID:   "s1",
			start:     day(2024, 6, 2),
			end:       day(2024, 6, 6),
			excludeID: "b1",
			wantHit:   false,
		},
		{
			name:     "overlapping block rejected",
			spaceID:  "s2",
			start:    day(2024, 7, 11),
			end:      day(2024, 7, 13),
			wantHit:  true,
			wantKind: KindBlock,
		},
		{
			name:    "booking starting at block end accepted",
			spaceID: "s2",
			start:   day(2024, 7, 12),
			end:     day(2024, 7, 14),
			wantHit: false,
		},
	}

	engine := NewEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.CheckConflict(occurrences, blocks, tt.spaceID, tt.start, tt.end, tt.excludeID)
			require.Equal(t, tt.wantHit, got.Conflict, "detail: %q", got.Detail)
			if tt.wantHit {
				assert.Equal(t, tt.wantKind, got.Kind)
				assert.NotEmpty(t, got.Detail)
			}
		})
	}
}

func TestCheckConflictBlockingPolicy(t *testing.T) {
	occurrences := []booking.Occurrence{
		{
			BookingID: "b1",
			SpaceID:   "s1",
			Start:     day(2024, 6, 1),
			End:       day(2024, 6, 5),
			Status:    booking.StatusNoShow,
		},
		{
			BookingID: "b2",
			SpaceID:   "s1",
			Start:     day(2024, 6, 1),
			End:       day(2024, 6, 5),
			Status:    booking.StatusCancelled,
		},
	}

	// Default policy: no-show still holds the slot
	engine := NewEngine()
	got := engine.CheckConflict(occurrences, nil, "s1", day(2024, 6, 2), day(2024, 6, 4), "")
	assert.True(t, got.Conflict, "no-show booking should block the slot")

	// Release policy: no-show is free
	engine.Blocking = ReleaseNoShow
	got = engine.CheckConflict(occurrences, nil, "s1", day(2024, 6, 2), day(2024, 6, 4), "")
	assert.False(t, got.Conflict, "no-show booking should not block the slot (detail: %q)", got.Detail)
}

func TestCheckConflictFirstMatchWins(t *testing.T) {
	occurrences := []booking.Occurrence{
		{BookingID: "b1", Code: "RSV-1", SpaceID: "s1", Start: day(2024, 6, 1), End: day(2024, 6, 5), Status: booking.StatusConfirmed},
		{BookingID: "b2", Code: "RSV-2", SpaceID: "s1", Start: day(2024, 6, 2), End: day(2024, 6, 6), Status: booking.StatusConfirmed},
	}

	got := NewEngine().CheckConflict(occurrences, nil, "s1", day(2024, 6, 3), day(2024, 6, 4), "")
	require.True(t, got.Conflict)
	assert.Equal(t, "conflicts with booking RSV-1 ()", got.Detail)
}

func TestStatusColorUnknownFallsBack(t *testing.T) {
	assert.Equal(t, defaultColor, StatusColor(booking.Status("bogus")))
	assert.Equal(t, defaultColor, CategoryColor(block.Category("bogus")))
	assert.NotEqual(t, StatusColor(booking.StatusConfirmed), StatusColor(booking.StatusCheckedIn),
		"confirmed and checked-in must render distinct colors")
}
