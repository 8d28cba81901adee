package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/audit"
	"github.com/rfmachado/backoffice/internal/billing"
	"github.com/rfmachado/backoffice/internal/plan"
	"github.com/rfmachado/backoffice/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectItemColumns = `
	e.id, e.plan_id, e.financial_responsible_id, e.monthly_cost, e.retroactive_diff
`

type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryItems(ctx context.Context, q rowQuerier, query string, args ...any) ([]*billing.Item, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing billable enrollments: %w", err)
	}
	defer rows.Close()

	var items []*billing.Item

	for rows.Next() {
		var item billing.Item

		if err := rows.Scan(
			&item.EnrollmentID, &item.PlanID, &item.FinancialResponsibleID,
			&item.MonthlyCostCents, &item.RetroactiveDiffCents,
		); err != nil {
			return nil, fmt.Errorf("scanning billable enrollment: %w", err)
		}

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating billable rows: %w", err)
	}

	return items, nil
}

func (s *Store) ActiveItems(ctx context.Context) ([]*billing.Item, error) {
	query := `
		SELECT ` + selectItemColumns + `
		FROM enrollments e
		WHERE e.status = 'active' AND e.deleted_at IS NULL
	`

	return queryItems(ctx, s.db, query)
}

type billingTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (billing.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning billing tx: %w", err)
	}

	return &billingTx{tx: tx}, nil
}

func (b *billingTx) Commit() error   { return b.tx.Commit() }
func (b *billingTx) Rollback() error { return b.tx.Rollback() }

func (b *billingTx) GetPlan(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	query := `
		SELECT id, kind, operator, name, billing_day, price_table
		FROM plans
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`

	var p plan.Plan

	var kindStr string

	var tableRaw []byte

	err := b.tx.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &kindStr, &p.Operator, &p.Name, &p.BillingDay, &tableRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, plan.ErrNotFound
		}

		return nil, fmt.Errorf("getting plan: %w", err)
	}

	p.Kind = plan.Kind(kindStr)

	if err := json.Unmarshal(tableRaw, &p.PriceTable); err != nil {
		return nil, fmt.Errorf("decoding price table: %w", err)
	}

	return &p, nil
}

func (b *billingTx) PlanItems(ctx context.Context, planID uuid.UUID) ([]*billing.Item, error) {
	query := `
		SELECT ` + selectItemColumns + `
		FROM enrollments e
		WHERE e.plan_id = $1 AND e.status = 'active' AND e.deleted_at IS NULL
		FOR UPDATE
	`

	return queryItems(ctx, b.tx, query, planID)
}

// keyClause builds the WHERE fragment selecting the billing key's
// transactions. Exactly one side of the key is set.
func keyClause(key billing.Key, argIdx int) (string, any) {
	if key.PlanID != nil {
		return fmt.Sprintf("plan_id = $%d", argIdx), *key.PlanID
	}

	return fmt.Sprintf("financial_responsible_id = $%d", argIdx), *key.FinancialResponsibleID
}

func (b *billingTx) HasPaidTransaction(ctx context.Context, key billing.Key, from, to time.Time) (bool, error) {
	clause, arg := keyClause(key, 1)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE ` + clause + ` AND status = 'paid' AND deleted_at IS NULL
				AND date >= $2 AND date <= $3
		)
	`

	var exists bool
	if err := b.tx.QueryRowContext(ctx, query, arg, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking paid transactions: %w", err)
	}

	return exists, nil
}

// UpsertPending replaces the period's single pending transaction, creating it
// on first run. The update path keeps the row's identity so references
// (reconciliation candidates, audit entries) stay valid across regenerations.
func (b *billingTx) UpsertPending(ctx context.Context, tx *transaction.Transaction, key billing.Key, from, to time.Time) error {
	clause, arg := keyClause(key, 1)

	update := `
		UPDATE transactions
		SET amount = $2, description = $3, date = $4, due_date = $5, updated_at = NOW()
		WHERE ` + clause + ` AND status = 'pending' AND deleted_at IS NULL
			AND date >= $6 AND date <= $7
		RETURNING id, created_at, updated_at
	`

	err := b.tx.QueryRowContext(ctx, update,
		arg, tx.AmountCents, tx.Description, tx.Date, tx.DueDate, from, to,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err == nil {
		return nil
	}

	if err != sql.ErrNoRows {
		return fmt.Errorf("updating pending transaction: %w", err)
	}

	insert := `
		INSERT INTO transactions (type, amount, status, description, date, due_date, plan_id, financial_responsible_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = b.tx.QueryRowContext(ctx, insert,
		tx.Type, tx.AmountCents, tx.Status, tx.Description, tx.Date, tx.DueDate,
		tx.PlanID, tx.FinancialResponsibleID,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating billing transaction: %w", err)
	}

	return nil
}

func (b *billingTx) ZeroRetroactiveDiffs(ctx context.Context, enrollmentIDs []uuid.UUID) error {
	if len(enrollmentIDs) == 0 {
		return nil
	}

	query := `
		UPDATE enrollments
		SET retroactive_diff = 0, updated_at = NOW()
		WHERE id = ANY($1)
	`

	if _, err := b.tx.ExecContext(ctx, query, enrollmentIDs); err != nil {
		return fmt.Errorf("zeroing retroactive diffs: %w", err)
	}

	return nil
}

func (b *billingTx) CreateAuditEntry(ctx context.Context, e *audit.Entry) error {
	query := `
		INSERT INTO financial_audits (transaction_id, action, previous_data, new_data, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := b.tx.QueryRowContext(ctx, query,
		e.TransactionID, e.Action, []byte(e.Previous), []byte(e.Next), e.Reason,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating audit entry: %w", err)
	}

	return nil
}
