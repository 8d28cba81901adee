package bankaccount

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	UpdateAccount(ctx context.Context, a *Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name           string
	BankCode       string
	OpeningBalance int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	a := &Account{
		Name:         params.Name,
		BankCode:     params.BankCode,
		BalanceCents: params.OpeningBalance,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

// Update changes account metadata. The balance is deliberately not editable
// here; only reconciliation confirmations move it.
func (s *Service) Update(ctx context.Context, a *Account) error {
	return s.repo.UpdateAccount(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}
