package availability

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
	"github.com/wildoats/tapechart-backend/internal/space"
)

// BookingEntry is a flattened booking occurrence with its display color.
type BookingEntry struct {
	booking.Occurrence
	Color string
}

// BlockEntry is a block with its display color.
type BlockEntry struct {
	*block.Block
	Color string
}

// Window is the consistent snapshot backing one tape-chart render: the full
// space inventory plus every booking occurrence and block touching the
// requested date window.
type Window struct {
	From     time.Time
	To       time.Time
	Spaces   []*space.Space
	Bookings []BookingEntry
	Blocks   []BlockEntry
}

type Service interface {
	// FetchWindow loads the three collections for an inclusive date window.
	// The reads run concurrently; a failure of any one fails the whole
	// call, never a partial snapshot.
	FetchWindow(ctx context.Context, orgID string, from, to time.Time) (*Window, error)
	// OccupancyRange materializes per-day occupancy for the window.
	OccupancyRange(ctx context.Context, orgID string, from, to time.Time) ([]DayOccupancy, error)
}

type service struct {
	spaces   space.Repository
	bookings booking.Repository
	blocks   block.Repository
}

func NewService(spaces space.Repository, bookings booking.Repository, blocks block.Repository) Service {
	return &service{
		spaces:   spaces,
		bookings: bookings,
		blocks:   blocks,
	}
}

func (s *service) FetchWindow(ctx context.Context, orgID string, from, to time.Time) (*Window, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	var (
		spaces []*space.Space
		occs   []booking.Occurrence
		blocks []*block.Block
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		spaces, err = s.spaces.ListByOrganization(gctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		occs, err = s.bookings.ListWindow(gctx, orgID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.blocks.ListWindow(gctx, orgID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w := &Window{
		From:     from,
		To:       to,
		Spaces:   spaces,
		Bookings: make([]BookingEntry, len(occs)),
		Blocks:   make([]BlockEntry, len(blocks)),
	}
	for i, occ := range occs {
		w.Bookings[i] = BookingEntry{Occurrence: occ, Color: StatusColor(occ.Status)}
	}
	for i, b := range blocks {
		w.Blocks[i] = BlockEntry{Block: b, Color: CategoryColor(b.Category)}
	}

	return w, nil
}

func (s *service) OccupancyRange(ctx context.Context, orgID string, from, to time.Time) ([]DayOccupancy, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	var (
		total int
		occs  []booking.Occurrence
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.spaces.CountByOrganization(gctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		occs, err = s.bookings.ListWindow(gctx, orgID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var days []DayOccupancy
	for d := range Occupancy(from, to, total, occs) {
		days = append(days, d)
	}
	return days, nil
}
