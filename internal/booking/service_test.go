package booking_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildoats/tapechart-backend/internal/availability"
	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
	"github.com/wildoats/tapechart-backend/internal/space"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeRepo is an in-memory booking.Repository.
type fakeRepo struct {
	seq      int
	bookings map[string]*booking.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*booking.Booking{}}
}

func (r *fakeRepo) Create(_ context.Context, b *booking.Booking) error {
	r.seq++
	b.ID = fmt.Sprintf("bk-%d", r.seq)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) List(_ context.Context, _ booking.Filter) ([]*booking.Booking, int, error) {
	var out []*booking.Booking
	for _, b := range r.bookings {
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return booking.ErrNotFound
	}
	clone := *b
	clone.UpdatedAt = time.Now()
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) ListWindow(_ context.Context, _ string, from, to time.Time) ([]booking.Occurrence, error) {
	return r.occurrences("", from, to), nil
}

func (r *fakeRepo) ListForSpace(_ context.Context, spaceID string, from, to time.Time) ([]booking.Occurrence, error) {
	return r.occurrences(spaceID, from, to), nil
}

func (r *fakeRepo) occurrences(spaceID string, from, to time.Time) []booking.Occurrence {
	var out []booking.Occurrence
	for _, b := range r.bookings {
		if b.Status == booking.StatusCancelled {
			continue
		}
		// Inclusive fetch window, matching the SQL queries
		if b.CheckIn.After(to) || b.CheckOut.Before(from) {
			continue
		}
		for _, occ := range b.Occurrences() {
			if spaceID == "" || occ.SpaceID == spaceID {
				out = append(out, occ)
			}
		}
	}
	return out
}

// fakeSpaceService resolves a fixed set of space IDs.
type fakeSpaceService struct {
	spaces map[string]*space.Space
}

func newFakeSpaceService(ids ...string) *fakeSpaceService {
	f := &fakeSpaceService{spaces: map[string]*space.Space{}}
	for _, id := range ids {
		f.spaces[id] = &space.Space{ID: id, Label: "Space " + id, Status: space.StatusAvailable}
	}
	return f
}

func (f *fakeSpaceService) Create(context.Context, space.CreateRequest) (*space.Space, error) {
	return nil, nil
}

func (f *fakeSpaceService) GetByID(_ context.Context, id string) (*space.Space, error) {
	sp, ok := f.spaces[id]
	if !ok {
		return nil, space.ErrNotFound
	}
	return sp, nil
}

func (f *fakeSpaceService) List(context.Context, space.Filter) ([]*space.Space, int, error) {
	return nil, 0, nil
}

func (f *fakeSpaceService) Update(context.Context, string, space.UpdateRequest) (*space.Space, error) {
	return nil, nil
}

func (f *fakeSpaceService) Delete(context.Context, string) error {
	return nil
}

// fakeBlockService returns a fixed block list for every space query.
type fakeBlockService struct {
	blocks []*block.Block
}

func (f *fakeBlockService) Create(context.Context, block.CreateRequest) (*block.Block, error) {
	return nil, nil
}

func (f *fakeBlockService) GetByID(context.Context, string) (*block.Block, error) {
	return nil, block.ErrNotFound
}

func (f *fakeBlockService) List(context.Context, block.Filter) ([]*block.Block, int, error) {
	return f.blocks, len(f.blocks), nil
}

func (f *fakeBlockService) ListForSpace(_ context.Context, spaceID string, _, _ time.Time) ([]*block.Block, error) {
	var out []*block.Block
	for _, b := range f.blocks {
		if b.SpaceID == spaceID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockService) Delete(context.Context, string) error {
	return nil
}

func newTestService(repo *fakeRepo, blocks ...*block.Block) booking.Service {
	return booking.NewService(
		repo,
		newFakeSpaceService("s1", "s2"),
		&fakeBlockService{blocks: blocks},
		availability.NewEngine(),
	)
}

func TestCreateRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 5),
		Status:       "confirmed",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "John Doe",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 3),
		CheckOut:     day(2024, 6, 7),
	})
	assert.ErrorIs(t, err, booking.ErrConflict)

	// Same interval on another space is fine
	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "John Doe",
		SpaceIDs:     []string{"s2"},
		CheckIn:      day(2024, 6, 3),
		CheckOut:     day(2024, 6, 7),
	})
	assert.NoError(t, err)
}

func TestCreateAcceptsBackToBack(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 5),
		Status:       "confirmed",
	})
	require.NoError(t, err)

	// Starts exactly when the previous one ends
	b, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "John Doe",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 5),
		CheckOut:     day(2024, 6, 8),
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusTentative, b.Status)
	assert.NotEmpty(t, b.Code)
}

func TestCreateRejectsBlockedSpace(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo(), &block.Block{
		ID:        "blk1",
		SpaceID:   "s2",
		StartDate: day(2024, 7, 10),
		EndDate:   day(2024, 7, 12),
		Category:  block.CategoryMaintenance,
	})

	_, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s2"},
		CheckIn:      day(2024, 7, 11),
		CheckOut:     day(2024, 7, 13),
	})
	assert.ErrorIs(t, err, booking.ErrConflict)

	// Starting exactly at block end is legal
	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s2"},
		CheckIn:      day(2024, 7, 12),
		CheckOut:     day(2024, 7, 14),
	})
	assert.NoError(t, err)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: " ",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 2),
	})
	assert.ErrorIs(t, err, booking.ErrEmptyOccupant)

	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 2),
		CheckOut:     day(2024, 6, 2),
	})
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)

	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     nil,
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 2),
	})
	assert.ErrorIs(t, err, booking.ErrNoSpace)

	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"missing"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 2),
	})
	assert.ErrorIs(t, err, booking.ErrSpaceNotFound)
}

func TestResizeExcludesSelf(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	b, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 5),
		Status:       "confirmed",
	})
	require.NoError(t, err)

	// Extending over its own current interval must not self-conflict
	resized, err := svc.Resize(ctx, b.ID, day(2024, 6, 1), day(2024, 6, 7))
	require.NoError(t, err)
	assert.Equal(t, day(2024, 6, 7), resized.CheckOut)
}

func TestMoveRejectsOccupiedTarget(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s2"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 5),
		Status:       "confirmed",
	})
	require.NoError(t, err)

	b, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "John Doe",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 2),
		CheckOut:     day(2024, 6, 4),
		Status:       "confirmed",
	})
	require.NoError(t, err)

	target := "s2"
	_, err = svc.Move(ctx, b.ID, booking.MoveRequest{SpaceID: &target})
	assert.ErrorIs(t, err, booking.ErrConflict)

	// A cancelled booking releases its slot
	_, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Alex Reed",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 2),
		CheckOut:     day(2024, 6, 4),
	})
	assert.NoError(t, err)
}

func TestLifecycleTransitions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	b, err := svc.Create(ctx, booking.CreateRequest{
		OccupantName: "Jane Cooper",
		SpaceIDs:     []string{"s1"},
		CheckIn:      day(2024, 6, 1),
		CheckOut:     day(2024, 6, 5),
		Status:       "confirmed",
	})
	require.NoError(t, err)

	b, err = svc.CheckIn(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedIn, b.Status)

	// No-show only applies before arrival
	_, err = svc.MarkNoShow(ctx, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	b, err = svc.CheckOut(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedOut, b.Status)

	// Checked-out bookings are immutable
	_, err = svc.Resize(ctx, b.ID, day(2024, 6, 1), day(2024, 6, 6))
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	_, err = svc.Cancel(ctx, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}
