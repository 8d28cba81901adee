package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/audit"
	"github.com/rfmachado/backoffice/internal/plan"
	"github.com/rfmachado/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	// ActiveItems returns the billable view of every active enrollment.
	ActiveItems(ctx context.Context) ([]*Item, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is the unit of work for one billing run: guard check, transaction
// upsert, retroactive-diff reset and audit entry commit or roll back
// together.
type Tx interface {
	GetPlan(ctx context.Context, id uuid.UUID) (*plan.Plan, error)
	PlanItems(ctx context.Context, planID uuid.UUID) ([]*Item, error)
	HasPaidTransaction(ctx context.Context, key Key, from, to time.Time) (bool, error)
	UpsertPending(ctx context.Context, tx *transaction.Transaction, key Key, from, to time.Time) error
	ZeroRetroactiveDiffs(ctx context.Context, enrollmentIDs []uuid.UUID) error
	CreateAuditEntry(ctx context.Context, e *audit.Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository

	// defaultDueDay sets the due date for responsible billing, which has no
	// plan billing day to inherit.
	defaultDueDay int
}

func NewService(repo Repository, defaultDueDay int) *Service {
	if defaultDueDay < 1 || defaultDueDay > 31 {
		defaultDueDay = 10
	}

	return &Service{repo: repo, defaultDueDay: defaultDueDay}
}

// GeneratePlanBilling aggregates the plan's active enrollments (monthly cost
// plus accrued retroactive differences) into the single pending transaction
// for the period. Re-running the same period replaces the pending transaction
// instead of duplicating it; a paid transaction in the period blocks the run.
func (s *Service) GeneratePlanBilling(ctx context.Context, planID uuid.UUID, year int, month time.Month) (*transaction.Transaction, error) {
	btx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin billing: %w", err)
	}
	defer btx.Rollback()

	p, err := btx.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	items, err := btx.PlanItems(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("listing billable enrollments: %w", err)
	}

	total, enrollmentIDs := totalOf(items)
	if total == 0 {
		return nil, ErrNothingToBill
	}

	first, last := periodBounds(year, month)
	key := Key{PlanID: &planID}

	paid, err := btx.HasPaidTransaction(ctx, key, first, last)
	if err != nil {
		return nil, fmt.Errorf("checking paid period: %w", err)
	}

	if paid {
		return nil, ErrPeriodPaid
	}

	due := dueDateFor(year, month, p.BillingDay)
	tx := &transaction.Transaction{
		Type:        transaction.TypeExpense,
		AmountCents: total,
		Status:      transaction.StatusPending,
		Description: fmt.Sprintf("%s invoice %04d-%02d", p.Name, year, month),
		Date:        due,
		DueDate:     &due,
		PlanID:      &planID,
	}

	if err := btx.UpsertPending(ctx, tx, key, first, last); err != nil {
		return nil, fmt.Errorf("upserting billing transaction: %w", err)
	}

	if err := btx.ZeroRetroactiveDiffs(ctx, enrollmentIDs); err != nil {
		return nil, fmt.Errorf("resetting retroactive diffs: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit billing: %w", err)
	}

	return tx, nil
}

// GenerateResponsibleBilling produces one income transaction per financial
// responsible for the period, under the same paid-period guard and
// idempotent-upsert rule as plan billing. Responsibles whose period is
// already paid are skipped, not failed, so a monthly run can be repeated.
func (s *Service) GenerateResponsibleBilling(ctx context.Context, year int, month time.Month) ([]*transaction.Transaction, error) {
	items, err := s.repo.ActiveItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active enrollments: %w", err)
	}

	byResponsible := make(map[uuid.UUID][]*Item)
	for _, item := range items {
		byResponsible[item.FinancialResponsibleID] = append(byResponsible[item.FinancialResponsibleID], item)
	}

	var generated []*transaction.Transaction

	for responsibleID, group := range byResponsible {
		tx, err := s.generateForResponsible(ctx, responsibleID, group, year, month)
		if err != nil {
			if errors.Is(err, ErrPeriodPaid) || errors.Is(err, ErrNothingToBill) {
				slog.Info("skipping responsible billing",
					"financial_responsible_id", responsibleID,
					"reason", err,
				)

				continue
			}

			return nil, fmt.Errorf("billing responsible %s: %w", responsibleID, err)
		}

		generated = append(generated, tx)
	}

	return generated, nil
}

func (s *Service) generateForResponsible(ctx context.Context, responsibleID uuid.UUID, items []*Item, year int, month time.Month) (*transaction.Transaction, error) {
	btx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin billing: %w", err)
	}
	defer btx.Rollback()

	total, enrollmentIDs := totalOf(items)
	if total == 0 {
		return nil, ErrNothingToBill
	}

	first, last := periodBounds(year, month)
	key := Key{FinancialResponsibleID: &responsibleID}

	paid, err := btx.HasPaidTransaction(ctx, key, first, last)
	if err != nil {
		return nil, fmt.Errorf("checking paid period: %w", err)
	}

	if paid {
		return nil, ErrPeriodPaid
	}

	due := dueDateFor(year, month, s.defaultDueDay)
	tx := &transaction.Transaction{
		Type:                   transaction.TypeIncome,
		AmountCents:            total,
		Status:                 transaction.StatusPending,
		Description:            fmt.Sprintf("Benefits charge %04d-%02d", year, month),
		Date:                   due,
		DueDate:                &due,
		FinancialResponsibleID: &responsibleID,
	}

	if err := btx.UpsertPending(ctx, tx, key, first, last); err != nil {
		return nil, fmt.Errorf("upserting billing transaction: %w", err)
	}

	if err := btx.ZeroRetroactiveDiffs(ctx, enrollmentIDs); err != nil {
		return nil, fmt.Errorf("resetting retroactive diffs: %w", err)
	}

	if err := btx.CreateAuditEntry(ctx, &audit.Entry{
		TransactionID: tx.ID,
		Action:        audit.ActionCreate,
		Next:          audit.Snapshot(tx),
		Reason:        fmt.Sprintf("billing run %04d-%02d", year, month),
	}); err != nil {
		return nil, fmt.Errorf("recording audit entry: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit billing: %w", err)
	}

	return tx, nil
}

func totalOf(items []*Item) (int64, []uuid.UUID) {
	var total int64

	ids := make([]uuid.UUID, 0, len(items))

	for _, item := range items {
		total += item.MonthlyCostCents + item.RetroactiveDiffCents
		ids = append(ids, item.EnrollmentID)
	}

	return total, ids
}
