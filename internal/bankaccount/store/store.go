package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/bankaccount"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	id, name, bank_code, balance, created_at, updated_at, deleted_at
`

func scanAccount(s scanner) (*bankaccount.Account, error) {
	var a bankaccount.Account

	if err := s.Scan(&a.ID, &a.Name, &a.BankCode, &a.BalanceCents, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *bankaccount.Account) error {
	query := `
		INSERT INTO bank_accounts (name, bank_code, balance, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, a.Name, a.BankCode, a.BalanceCents).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating bank account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*bankaccount.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts WHERE id = $1 AND deleted_at IS NULL`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bankaccount.ErrNotFound
		}

		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*bankaccount.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts WHERE deleted_at IS NULL ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*bankaccount.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bank account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *bankaccount.Account) error {
	query := `
		UPDATE bank_accounts
		SET name = $1, bank_code = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	if _, err := s.db.ExecContext(ctx, query, a.Name, a.BankCode, a.ID); err != nil {
		return fmt.Errorf("updating bank account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bank_accounts SET deleted_at = NOW() WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting bank account: %w", err)
	}

	return nil
}
