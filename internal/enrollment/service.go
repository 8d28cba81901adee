package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/collaborator"
	"github.com/rfmachado/backoffice/internal/plan"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=enrollment
type Repository interface {
	CreateEnrollment(ctx context.Context, e *Enrollment) error
	GetEnrollment(ctx context.Context, id uuid.UUID) (*Enrollment, error)
	ListEnrollments(ctx context.Context, filter ListFilter) ([]*Enrollment, error)
	UpdateEnrollment(ctx context.Context, e *Enrollment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteEnrollment(ctx context.Context, id uuid.UUID) error
}

// PlanSource resolves the plan whose price table prices the enrollment.
type PlanSource interface {
	Get(ctx context.Context, id uuid.UUID) (*plan.Plan, error)
}

// BeneficiarySource resolves who is being enrolled and when they were born.
type BeneficiarySource interface {
	Get(ctx context.Context, id uuid.UUID) (*collaborator.Collaborator, error)
	GetDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) (*collaborator.Dependent, error)
}

type Service struct {
	repo          Repository
	plans         PlanSource
	collaborators BeneficiarySource
	now           func() time.Time
}

func NewService(repo Repository, plans PlanSource, collaborators BeneficiarySource) *Service {
	return &Service{
		repo:          repo,
		plans:         plans,
		collaborators: collaborators,
		now:           time.Now,
	}
}

type CreateParams struct {
	CollaboratorID         uuid.UUID
	DependentID            *uuid.UUID
	FinancialResponsibleID uuid.UUID
	PlanID                 uuid.UUID
}

type ListFilter struct {
	PlanID         *uuid.UUID
	CollaboratorID *uuid.UUID
	Status         *Status
}

// Create enrolls a beneficiary. The monthly cost comes from the plan's price
// table; no bracket covering the beneficiary is a hard failure, never a
// zero-priced enrollment.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Enrollment, error) {
	p, err := s.plans.Get(ctx, params.PlanID)
	if err != nil {
		return nil, err
	}

	birthDate, beneficiary, err := s.resolveBeneficiary(ctx, params.CollaboratorID, params.DependentID)
	if err != nil {
		return nil, err
	}

	price, err := plan.LookupPrice(p.PriceTable, plan.Age(birthDate, s.now()), beneficiary)
	if err != nil {
		return nil, fmt.Errorf("pricing enrollment: %w", err)
	}

	e := &Enrollment{
		CollaboratorID:         params.CollaboratorID,
		DependentID:            params.DependentID,
		FinancialResponsibleID: params.FinancialResponsibleID,
		PlanID:                 params.PlanID,
		MonthlyCostCents:       price,
		Status:                 StatusActive,
	}
	if err := s.repo.CreateEnrollment(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) resolveBeneficiary(ctx context.Context, collaboratorID uuid.UUID, dependentID *uuid.UUID) (time.Time, plan.BeneficiaryType, error) {
	if dependentID != nil {
		d, err := s.collaborators.GetDependent(ctx, collaboratorID, *dependentID)
		if err != nil {
			return time.Time{}, "", err
		}

		return d.BirthDate, plan.BeneficiaryDependent, nil
	}

	c, err := s.collaborators.Get(ctx, collaboratorID)
	if err != nil {
		return time.Time{}, "", err
	}

	return c.BirthDate, plan.BeneficiaryTitular, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Enrollment, error) {
	return s.repo.GetEnrollment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Enrollment, error) {
	return s.repo.ListEnrollments(ctx, filter)
}

// ChangePlan moves an enrollment to another plan, repricing it against the
// new plan's table under the same hard-failure rule as Create.
func (s *Service) ChangePlan(ctx context.Context, id, planID uuid.UUID) (*Enrollment, error) {
	e, err := s.repo.GetEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	birthDate, beneficiary, err := s.resolveBeneficiary(ctx, e.CollaboratorID, e.DependentID)
	if err != nil {
		return nil, err
	}

	price, err := plan.LookupPrice(p.PriceTable, plan.Age(birthDate, s.now()), beneficiary)
	if err != nil {
		return nil, fmt.Errorf("pricing enrollment: %w", err)
	}

	e.PlanID = planID
	e.MonthlyCostCents = price

	if err := s.repo.UpdateEnrollment(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEnrollment(ctx, id)
}
