package block

import (
	"context"
	"time"

	"github.com/wildoats/tapechart-backend/internal/space"
)

type CreateRequest struct {
	SpaceID   string
	StartDate time.Time
	EndDate   time.Time
	Category  string
	Reason    string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Block, error)
	GetByID(ctx context.Context, id string) (*Block, error)
	List(ctx context.Context, filter Filter) ([]*Block, int, error)
	ListForSpace(ctx context.Context, spaceID string, from, to time.Time) ([]*Block, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	spaceService space.Service
}

func NewService(repo Repository, spaceService space.Service) Service {
	return &service{
		repo:         repo,
		spaceService: spaceService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Block, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidRange
	}

	category := Category(req.Category)
	if !ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	sp, err := s.spaceService.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, ErrInvalidSpace
	}

	b := &Block{
		SpaceID:   req.SpaceID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  category,
		Reason:    req.Reason,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	b.SpaceLabel = sp.Label
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Block, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Block, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListForSpace(ctx context.Context, spaceID string, from, to time.Time) ([]*Block, error) {
	return s.repo.ListForSpace(ctx, spaceID, from, to)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
