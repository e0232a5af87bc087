package booking

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/pkg/apperror"
	"github.com/wildoats/tapechart-backend/internal/space"
)

type CreateRequest struct {
	OccupantName string
	SpaceIDs     []string
	CheckIn      time.Time
	CheckOut     time.Time
	Status       string // optional, defaults to tentative
}

// MoveRequest relocates and/or reschedules a booking. Nil fields keep the
// current value.
type MoveRequest struct {
	SpaceID  *string
	CheckIn  *time.Time
	CheckOut *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Move(ctx context.Context, id string, req MoveRequest) (*Booking, error)
	Resize(ctx context.Context, id string, checkIn, checkOut time.Time) (*Booking, error)
	CheckIn(ctx context.Context, id string) (*Booking, error)
	CheckOut(ctx context.Context, id string) (*Booking, error)
	Cancel(ctx context.Context, id string) (*Booking, error)
	MarkNoShow(ctx context.Context, id string) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	spaceService space.Service
	blockService block.Service
	checker      ConflictChecker
}

func NewService(repo Repository, spaceService space.Service, blockService block.Service, checker ConflictChecker) Service {
	return &service{
		repo:         repo,
		spaceService: spaceService,
		blockService: blockService,
		checker:      checker,
	}
}

// newCode generates a human-readable confirmation code.
func newCode() string {
	return "RSV-" + strings.ToUpper(uuid.NewString()[:8])
}

// ensureFree runs the conflict check for one space against freshly fetched
// candidates. Must be called immediately before the write it guards.
func (s *service) ensureFree(ctx context.Context, spaceID string, start, end time.Time, excludeBookingID string) error {
	candidates, err := s.repo.ListForSpace(ctx, spaceID, start, end)
	if err != nil {
		return err
	}
	blocks, err := s.blockService.ListForSpace(ctx, spaceID, start, end)
	if err != nil {
		return err
	}

	if conflict, detail := s.checker.Check(candidates, blocks, spaceID, start, end, excludeBookingID); conflict {
		return apperror.Wrap(ErrConflict, http.StatusConflict, detail)
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.OccupantName) == "" {
		return nil, ErrEmptyOccupant
	}
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidTimeRange
	}
	if len(req.SpaceIDs) == 0 {
		return nil, ErrNoSpace
	}

	status := StatusTentative
	if req.Status != "" {
		status = Status(req.Status)
		if status != StatusTentative && status != StatusConfirmed {
			return nil, ErrInvalidStatus
		}
	}

	for _, spaceID := range req.SpaceIDs {
		if _, err := s.spaceService.GetByID(ctx, spaceID); err != nil {
			return nil, ErrSpaceNotFound
		}
		if err := s.ensureFree(ctx, spaceID, req.CheckIn, req.CheckOut, ""); err != nil {
			return nil, err
		}
	}

	var ref SpaceRef
	if len(req.SpaceIDs) == 1 {
		ref = DirectSpaceRef(req.SpaceIDs[0])
	} else {
		var err error
		ref, err = JoinedSpaceRef(req.SpaceIDs)
		if err != nil {
			return nil, err
		}
	}

	b := &Booking{
		Code:         newCode(),
		OccupantName: req.OccupantName,
		Spaces:       ref,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Status:       status,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// movable reports whether the booking may still change space or interval.
func movable(status Status) bool {
	switch status {
	case StatusTentative, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}

func (s *service) Move(ctx context.Context, id string, req MoveRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !movable(b.Status) {
		return nil, ErrInvalidTransition
	}

	newCheckIn := b.CheckIn
	newCheckOut := b.CheckOut
	if req.CheckIn != nil {
		newCheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		newCheckOut = *req.CheckOut
	}
	if !newCheckOut.After(newCheckIn) {
		return nil, ErrInvalidTimeRange
	}

	targetSpaces := b.Spaces.SpaceIDs()
	if req.SpaceID != nil {
		if _, err := s.spaceService.GetByID(ctx, *req.SpaceID); err != nil {
			return nil, ErrSpaceNotFound
		}
		targetSpaces = []string{*req.SpaceID}
	}

	// Validated against everything except the booking itself, so that a
	// plain resize within the current slot always passes.
	for _, spaceID := range targetSpaces {
		if err := s.ensureFree(ctx, spaceID, newCheckIn, newCheckOut, b.ID); err != nil {
			return nil, err
		}
	}

	b.CheckIn = newCheckIn
	b.CheckOut = newCheckOut
	if req.SpaceID != nil {
		b.Spaces = DirectSpaceRef(*req.SpaceID)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Resize(ctx context.Context, id string, checkIn, checkOut time.Time) (*Booking, error) {
	return s.Move(ctx, id, MoveRequest{CheckIn: &checkIn, CheckOut: &checkOut})
}

// transition applies a lifecycle change after verifying the current status
// is one of the allowed origins.
func (s *service) transition(ctx context.Context, id string, to Status, from ...Status) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, f := range from {
		if b.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	b.Status = to
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) CheckIn(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusCheckedIn, StatusTentative, StatusConfirmed)
}

func (s *service) CheckOut(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusCheckedOut, StatusCheckedIn)
}

func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	// Cancelling a no-show is how its space is manually released.
	return s.transition(ctx, id, StatusCancelled, StatusTentative, StatusConfirmed, StatusNoShow)
}

func (s *service) MarkNoShow(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusNoShow, StatusTentative, StatusConfirmed)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
