package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/audit"
	"github.com/rfmachado/backoffice/internal/ofx"
	"github.com/rfmachado/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reconciliation
type Repository interface {
	// CandidatesFor returns the pending transactions on the account matching
	// the entry's type and absolute amount inside the date window.
	CandidatesFor(ctx context.Context, bankAccountID uuid.UUID, txType transaction.Type, amountCents int64, from, to time.Time) ([]*transaction.Transaction, error)

	BeginConfirmation(ctx context.Context) (ConfirmationTx, error)
}

// ConfirmationTx settles one match as a unit: the transaction flips to paid,
// the account balance moves and the audit entry lands together or not at all.
type ConfirmationTx interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	MarkPaid(ctx context.Context, id uuid.UUID, settlementDate time.Time) error
	AdjustBalance(ctx context.Context, bankAccountID uuid.UUID, deltaCents int64) error
	CreateAuditEntry(ctx context.Context, e *audit.Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SuggestMatches proposes candidate transactions for each imported entry:
// pending, same account, same type, exact absolute amount, dated within
// three days of the entry.
func (s *Service) SuggestMatches(ctx context.Context, entries []ofx.Entry, bankAccountID uuid.UUID) ([]MatchResult, error) {
	results := make([]MatchResult, 0, len(entries))

	for _, entry := range entries {
		amount := entry.AmountCents
		if amount < 0 {
			amount = -amount
		}

		from := entry.Date.AddDate(0, 0, -matchWindowDays)
		to := entry.Date.AddDate(0, 0, matchWindowDays)

		matches, err := s.repo.CandidatesFor(ctx, bankAccountID, entry.Type, amount, from, to)
		if err != nil {
			return nil, fmt.Errorf("searching candidates for entry %q: %w", entry.ExternalID, err)
		}

		results = append(results, MatchResult{Entry: entry, Matches: matches})
	}

	return results, nil
}

type ConfirmParams struct {
	TransactionID  uuid.UUID
	SettlementDate time.Time
	Reason         string
}

// Confirm settles a matched transaction: status becomes paid, the linked
// account balance moves by the transaction amount (up for income, down for
// expense) and a liquidate audit entry records the before and after states.
func (s *Service) Confirm(ctx context.Context, params ConfirmParams) (*transaction.Transaction, error) {
	if err := transaction.ValidateReason(params.Reason); err != nil {
		return nil, err
	}

	btx, err := s.repo.BeginConfirmation(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin confirmation: %w", err)
	}
	defer btx.Rollback()

	tx, err := btx.GetTransaction(ctx, params.TransactionID)
	if err != nil {
		return nil, err
	}

	if tx.Reconciled || tx.Status == transaction.StatusPaid {
		return nil, ErrAlreadyReconciled
	}

	if tx.BankAccountID == nil {
		return nil, ErrNoBankAccount
	}

	previous := audit.Snapshot(tx)

	delta := tx.AmountCents
	if tx.Type == transaction.TypeExpense {
		delta = -delta
	}

	if err := btx.MarkPaid(ctx, tx.ID, params.SettlementDate); err != nil {
		return nil, fmt.Errorf("marking transaction paid: %w", err)
	}

	if err := btx.AdjustBalance(ctx, *tx.BankAccountID, delta); err != nil {
		return nil, fmt.Errorf("adjusting account balance: %w", err)
	}

	tx.Status = transaction.StatusPaid
	tx.Reconciled = true
	tx.SettlementDate = &params.SettlementDate

	if err := btx.CreateAuditEntry(ctx, &audit.Entry{
		TransactionID: tx.ID,
		Action:        audit.ActionLiquidate,
		Previous:      previous,
		Next:          audit.Snapshot(tx),
		Reason:        params.Reason,
	}); err != nil {
		return nil, fmt.Errorf("recording audit entry: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirmation: %w", err)
	}

	return tx, nil
}
