package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
	"github.com/wildoats/tapechart-backend/internal/space"
)

// fakeSpaceRepo serves a fixed inventory.
type fakeSpaceRepo struct {
	spaces []*space.Space
	err    error
}

func (f *fakeSpaceRepo) Create(context.Context, *space.Space) error { return nil }

func (f *fakeSpaceRepo) GetByID(context.Context, string) (*space.Space, error) {
	return nil, space.ErrNotFound
}

func (f *fakeSpaceRepo) List(context.Context, space.Filter) ([]*space.Space, int, error) {
	return nil, 0, nil
}

func (f *fakeSpaceRepo) Update(context.Context, *space.Space) error { return nil }

func (f *fakeSpaceRepo) Delete(context.Context, string) error { return nil }

func (f *fakeSpaceRepo) ListByOrganization(context.Context, string) ([]*space.Space, error) {
	return f.spaces, f.err
}

func (f *fakeSpaceRepo) CountByOrganization(context.Context, string) (int, error) {
	return len(f.spaces), f.err
}

// fakeBookingRepo serves fixed occurrences.
type fakeBookingRepo struct {
	occs []booking.Occurrence
	err  error
}

func (f *fakeBookingRepo) Create(context.Context, *booking.Booking) error { return nil }

func (f *fakeBookingRepo) GetByID(context.Context, string) (*booking.Booking, error) {
	return nil, booking.ErrNotFound
}

func (f *fakeBookingRepo) List(context.Context, booking.Filter) ([]*booking.Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) Update(context.Context, *booking.Booking) error { return nil }

func (f *fakeBookingRepo) Delete(context.Context, string) error { return nil }

func (f *fakeBookingRepo) ListWindow(context.Context, string, time.Time, time.Time) ([]booking.Occurrence, error) {
	return f.occs, f.err
}

func (f *fakeBookingRepo) ListForSpace(context.Context, string, time.Time, time.Time) ([]booking.Occurrence, error) {
	return f.occs, f.err
}

// fakeBlockRepo serves fixed blocks.
type fakeBlockRepo struct {
	blocks []*block.Block
	err    error
}

func (f *fakeBlockRepo) Create(context.Context, *block.Block) error { return nil }

func (f *fakeBlockRepo) GetByID(context.Context, string) (*block.Block, error) {
	return nil, block.ErrNotFound
}

func (f *fakeBlockRepo) List(context.Context, block.Filter) ([]*block.Block, int, error) {
	return nil, 0, nil
}

func (f *fakeBlockRepo) Delete(context.Context, string) error { return nil }

func (f *fakeBlockRepo) ListForSpace(context.Context, string, time.Time, time.Time) ([]*block.Block, error) {
	return f.blocks, f.err
}

func (f *fakeBlockRepo) ListWindow(context.Context, string, time.Time, time.Time) ([]*block.Block, error) {
	return f.blocks, f.err
}

func TestFetchWindowAttachesColors(t *testing.T) {
	svc := NewService(
		&fakeSpaceRepo{spaces: []*space.Space{
			{ID: "s1", Label: "Room 101"},
			{ID: "s2", Label: "Room 102"},
		}},
		&fakeBookingRepo{occs: []booking.Occurrence{
			{BookingID: "b1", Code: "RSV-AAAA0001", SpaceID: "s1",
				Start: day(2024, 6, 1), End: day(2024, 6, 5),
				Status: booking.StatusConfirmed},
		}},
		&fakeBlockRepo{blocks: []*block.Block{
			{ID: "blk1", SpaceID: "s2",
				StartDate: day(2024, 6, 2), EndDate: day(2024, 6, 4),
				Category: block.CategoryMaintenance},
		}},
	)

	w, err := svc.FetchWindow(context.Background(), "org1", day(2024, 6, 1), day(2024, 6, 7))
	require.NoError(t, err)
	require.NotNil(t, w)

	assert.Equal(t, day(2024, 6, 1), w.From)
	assert.Equal(t, day(2024, 6, 7), w.To)
	assert.Len(t, w.Spaces, 2)

	require.Len(t, w.Bookings, 1)
	assert.Equal(t, "RSV-AAAA0001", w.Bookings[0].Code)
	assert.Equal(t, StatusColor(booking.StatusConfirmed), w.Bookings[0].Color)

	require.Len(t, w.Blocks, 1)
	assert.Equal(t, "blk1", w.Blocks[0].ID)
	assert.Equal(t, CategoryColor(block.CategoryMaintenance), w.Blocks[0].Color)
}

func TestFetchWindowFailsWhole(t *testing.T) {
	readErr := errors.New("connection reset")

	// Any one failing read fails the whole call, never a partial snapshot.
	tests := []struct {
		name     string
		spaces   *fakeSpaceRepo
		bookings *fakeBookingRepo
		blocks   *fakeBlockRepo
	}{
		{
			name:     "spaces read fails",
			spaces:   &fakeSpaceRepo{err: readErr},
			bookings: &fakeBookingRepo{},
			blocks:   &fakeBlockRepo{},
		},
		{
			name:     "bookings read fails",
			spaces:   &fakeSpaceRepo{spaces: []*space.Space{{ID: "s1"}}},
			bookings: &fakeBookingRepo{err: readErr},
			blocks:   &fakeBlockRepo{},
		},
		{
			name:     "blocks read fails",
			spaces:   &fakeSpaceRepo{spaces: []*space.Space{{ID: "s1"}}},
			bookings: &fakeBookingRepo{},
			blocks:   &fakeBlockRepo{err: readErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.spaces, tt.bookings, tt.blocks)
			w, err := svc.FetchWindow(context.Background(), "org1", day(2024, 6, 1), day(2024, 6, 7))
			assert.ErrorIs(t, err, readErr)
			assert.Nil(t, w)
		})
	}
}

func TestFetchWindowInvalidRange(t *testing.T) {
	svc := NewService(&fakeSpaceRepo{}, &fakeBookingRepo{}, &fakeBlockRepo{})

	w, err := svc.FetchWindow(context.Background(), "org1", day(2024, 6, 7), day(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, w)
}

func TestOccupancyRange(t *testing.T) {
	svc := NewService(
		&fakeSpaceRepo{spaces: []*space.Space{{ID: "s1"}, {ID: "s2"}}},
		&fakeBookingRepo{occs: []booking.Occurrence{
			{BookingID: "b1", SpaceID: "s1",
				Start: day(2024, 6, 1), End: day(2024, 6, 3),
				Status: booking.StatusConfirmed},
		}},
		&fakeBlockRepo{},
	)

	days, err := svc.OccupancyRange(context.Background(), "org1", day(2024, 6, 1), day(2024, 6, 3))
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, 1, days[0].Occupied)
	assert.Equal(t, 1, days[1].Occupied)
	assert.Equal(t, 0, days[2].Occupied)
	assert.Equal(t, 2, days[0].Total)
	assert.Equal(t, 50, days[0].Percentage)
}

func TestOccupancyRangeErrors(t *testing.T) {
	readErr := errors.New("connection reset")

	svc := NewService(&fakeSpaceRepo{err: readErr}, &fakeBookingRepo{}, &fakeBlockRepo{})
	days, err := svc.OccupancyRange(context.Background(), "org1", day(2024, 6, 1), day(2024, 6, 3))
	assert.ErrorIs(t, err, readErr)
	assert.Nil(t, days)

	svc = NewService(&fakeSpaceRepo{}, &fakeBookingRepo{}, &fakeBlockRepo{})
	days, err = svc.OccupancyRange(context.Background(), "org1", day(2024, 6, 3), day(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, days)
}
