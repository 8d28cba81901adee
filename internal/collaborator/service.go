package collaborator

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateCollaborator(ctx context.Context, c *Collaborator) error
	GetCollaborator(ctx context.Context, id uuid.UUID) (*Collaborator, error)
	ListCollaborators(ctx context.Context) ([]*Collaborator, error)
	UpdateCollaborator(ctx context.Context, c *Collaborator) error
	DeleteCollaborator(ctx context.Context, id uuid.UUID) error

	CreateDependent(ctx context.Context, d *Dependent) error
	GetDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) (*Dependent, error)
	DeleteDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name      string
	Email     string
	BirthDate time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Collaborator, error) {
	c := &Collaborator{
		Name:      params.Name,
		Email:     params.Email,
		BirthDate: params.BirthDate,
	}
	if err := s.repo.CreateCollaborator(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Collaborator, error) {
	return s.repo.GetCollaborator(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Collaborator, error) {
	return s.repo.ListCollaborators(ctx)
}

func (s *Service) Update(ctx context.Context, c *Collaborator) error {
	return s.repo.UpdateCollaborator(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCollaborator(ctx, id)
}

type DependentParams struct {
	Name         string
	Relationship string
	BirthDate    time.Time
}

func (s *Service) AddDependent(ctx context.Context, collaboratorID uuid.UUID, params DependentParams) (*Dependent, error) {
	// Make sure the owner exists before attaching a dependent to it.
	if _, err := s.repo.GetCollaborator(ctx, collaboratorID); err != nil {
		return nil, err
	}

	d := &Dependent{
		CollaboratorID: collaboratorID,
		Name:           params.Name,
		Relationship:   params.Relationship,
		BirthDate:      params.BirthDate,
	}
	if err := s.repo.CreateDependent(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) GetDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) (*Dependent, error) {
	return s.repo.GetDependent(ctx, collaboratorID, dependentID)
}

func (s *Service) RemoveDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) error {
	return s.repo.DeleteDependent(ctx, collaboratorID, dependentID)
}
