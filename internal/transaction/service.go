package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/audit"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// Auditor appends audit entries for financial-record mutations. Implementors
// must not fail the caller: audit problems are logged, not propagated.
type Auditor interface {
	Record(ctx context.Context, e audit.Entry)
}

type Service struct {
	repo    Repository
	auditor Auditor
}

func NewService(repo Repository, auditor Auditor) *Service {
	return &Service{repo: repo, auditor: auditor}
}

type CreateParams struct {
	Type          Type
	AmountCents   int64
	Status        Status
	Description   string
	Date          time.Time
	DueDate       *time.Time
	PlanID        *uuid.UUID
	BankAccountID *uuid.UUID
}

type ListFilter struct {
	Status        *Status
	Type          *Type
	PlanID        *uuid.UUID
	BankAccountID *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		Type:          params.Type,
		AmountCents:   params.AmountCents,
		Status:        params.Status,
		Description:   params.Description,
		Date:          params.Date,
		DueDate:       params.DueDate,
		PlanID:        params.PlanID,
		BankAccountID: params.BankAccountID,
	}
	if tx.Status == "" {
		tx.Status = StatusPending
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, audit.Entry{
		TransactionID: tx.ID,
		Action:        audit.ActionCreate,
		Next:          audit.Snapshot(tx),
	})

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Update persists an edited transaction. Financial records can only change
// with a justification, which lands in the audit trail next to the before and
// after snapshots.
func (s *Service) Update(ctx context.Context, tx *Transaction, reason string) error {
	if err := ValidateReason(reason); err != nil {
		return err
	}

	previous, err := s.repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	s.auditor.Record(ctx, audit.Entry{
		TransactionID: tx.ID,
		Action:        audit.ActionUpdate,
		Previous:      audit.Snapshot(previous),
		Next:          audit.Snapshot(tx),
		Reason:        reason,
	})

	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, reason string) error {
	if err := ValidateReason(reason); err != nil {
		return err
	}

	previous, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.auditor.Record(ctx, audit.Entry{
		TransactionID: id,
		Action:        audit.ActionDelete,
		Previous:      audit.Snapshot(previous),
		Reason:        reason,
	})

	return nil
}
