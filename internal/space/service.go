package space

import (
	"context"
	"strings"

	"github.com/wildoats/tapechart-backend/internal/spacetype"
)

type CreateRequest struct {
	OrganizationID string
	SpaceTypeID    string
	Label          string
	ZoneTag        string
	Status         string
}

type UpdateRequest struct {
	Label   *string
	ZoneTag *string
	Status  *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Space, error)
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Space, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	stService spacetype.Service
}

func NewService(repo Repository, stService spacetype.Service) Service {
	return &service{
		repo:      repo,
		stService: stService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Space, error) {
	if strings.TrimSpace(req.Label) == "" {
		return nil, ErrEmptyLabel
	}
	if req.OrganizationID == "" {
		return nil, ErrInvalidOrgID
	}

	// Validate the space type exists and belongs to the same organization.
	st, err := s.stService.GetByID(ctx, req.SpaceTypeID)
	if err != nil {
		return nil, ErrInvalidSpaceType
	}
	if st.OrganizationID != req.OrganizationID {
		return nil, ErrInvalidSpaceType
	}

	status := StatusAvailable
	if req.Status != "" {
		status = Status(req.Status)
		if !ValidStatus(status) {
			return nil, ErrInvalidStatus
		}
	}

	sp := &Space{
		OrganizationID: req.OrganizationID,
		SpaceTypeID:    req.SpaceTypeID,
		Label:          req.Label,
		ZoneTag:        req.ZoneTag,
		Status:         status,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	sp.SpaceTypeName = st.Name
	return sp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		if strings.TrimSpace(*req.Label) == "" {
			return nil, ErrEmptyLabel
		}
		sp.Label = *req.Label
	}
	if req.ZoneTag != nil {
		sp.ZoneTag = *req.ZoneTag
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !ValidStatus(status) {
			return nil, ErrInvalidStatus
		}
		sp.Status = status
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
