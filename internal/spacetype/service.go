package spacetype

import (
	"context"
	"strings"
)

type CreateRequest struct {
	OrganizationID string
	Name           string
	Description    string
}

type UpdateRequest struct {
	Name        *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*SpaceType, error)
	GetByID(ctx context.Context, id string) (*SpaceType, error)
	List(ctx context.Context, filter Filter) ([]*SpaceType, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*SpaceType, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*SpaceType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.OrganizationID == "" {
		return nil, ErrInvalidOrgID
	}

	st := &SpaceType{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*SpaceType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*SpaceType, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*SpaceType, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
