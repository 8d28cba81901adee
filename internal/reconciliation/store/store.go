package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/audit"
	"github.com/rfmachado/backoffice/internal/bankaccount"
	"github.com/rfmachado/backoffice/internal/reconciliation"
	"github.com/rfmachado/backoffice/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectTransactionColumns = `
	id, type, amount, status, description, date, due_date,
	plan_id, financial_responsible_id, bank_account_id, reconciled, settlement_date,
	created_at, updated_at, deleted_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, statusStr string

	if err := s.Scan(
		&tx.ID, &typeStr, &tx.AmountCents, &statusStr, &tx.Description, &tx.Date, &tx.DueDate,
		&tx.PlanID, &tx.FinancialResponsibleID, &tx.BankAccountID, &tx.Reconciled, &tx.SettlementDate,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Status = transaction.Status(statusStr)

	return &tx, nil
}

func (s *Store) CandidatesFor(ctx context.Context, bankAccountID uuid.UUID, txType transaction.Type, amountCents int64, from, to time.Time) ([]*transaction.Transaction, error) {
	query := `
		SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE bank_account_id = $1 AND status = 'pending' AND deleted_at IS NULL
			AND type = $2 AND amount = $3
			AND date >= $4 AND date <= $5
		ORDER BY date
	`

	rows, err := s.db.QueryContext(ctx, query, bankAccountID, txType, amountCents, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}

		candidates = append(candidates, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidates: %w", err)
	}

	return candidates, nil
}

type confirmationTx struct {
	tx *sql.Tx
}

func (s *Store) BeginConfirmation(ctx context.Context) (reconciliation.ConfirmationTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning confirmation tx: %w", err)
	}

	return &confirmationTx{tx: tx}, nil
}

func (c *confirmationTx) Commit() error   { return c.tx.Commit() }
func (c *confirmationTx) Rollback() error { return c.tx.Rollback() }

func (c *confirmationTx) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `
		SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`

	tx, err := scanTransaction(c.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (c *confirmationTx) MarkPaid(ctx context.Context, id uuid.UUID, settlementDate time.Time) error {
	query := `
		UPDATE transactions
		SET status = 'paid', reconciled = TRUE, settlement_date = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := c.tx.ExecContext(ctx, query, id, settlementDate)
	if err != nil {
		return fmt.Errorf("marking transaction paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (c *confirmationTx) AdjustBalance(ctx context.Context, bankAccountID uuid.UUID, deltaCents int64) error {
	query := `
		UPDATE bank_accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := c.tx.ExecContext(ctx, query, bankAccountID, deltaCents)
	if err != nil {
		return fmt.Errorf("adjusting balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return bankaccount.ErrNotFound
	}

	return nil
}

func (c *confirmationTx) CreateAuditEntry(ctx context.Context, e *audit.Entry) error {
	query := `
		INSERT INTO financial_audits (transaction_id, action, previous_data, new_data, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		e.TransactionID, e.Action, []byte(e.Previous), []byte(e.Next), e.Reason,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating audit entry: %w", err)
	}

	return nil
}
