package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateEntry(ctx context.Context, e *audit.Entry) error {
	query := `
		INSERT INTO financial_audits (transaction_id, action, previous_data, new_data, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.TransactionID, e.Action, []byte(e.Previous), []byte(e.Next), e.Reason,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating audit entry: %w", err)
	}

	return nil
}

func (s *Store) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*audit.Entry, error) {
	query := `
		SELECT id, transaction_id, action, previous_data, new_data, reason, created_at
		FROM financial_audits
		WHERE transaction_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry

	for rows.Next() {
		var e audit.Entry

		var actionStr string

		var previous, next []byte

		if err := rows.Scan(&e.ID, &e.TransactionID, &actionStr, &previous, &next, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		e.Action = audit.Action(actionStr)
		e.Previous = previous
		e.Next = next
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit rows: %w", err)
	}

	return entries, nil
}
