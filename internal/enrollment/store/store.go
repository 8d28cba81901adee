package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/enrollment"
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

const selectEnrollmentColumns = `
	id, collaborator_id, dependent_id, financial_responsible_id, plan_id,
	monthly_cost, retroactive_diff, status, created_at, updated_at, deleted_at
`

func scanEnrollment(s scanner) (*enrollment.Enrollment, error) {
	var e enrollment.Enrollment

	var statusStr string

	if err := s.Scan(
		&e.ID, &e.CollaboratorID, &e.DependentID, &e.FinancialResponsibleID, &e.PlanID,
		&e.MonthlyCostCents, &e.RetroactiveDiffCents, &statusStr,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}

	e.Status = enrollment.Status(statusStr)

	return &e, nil
}

func (s *Store) CreateEnrollment(ctx context.Context, e *enrollment.Enrollment) error {
	query := `
		INSERT INTO enrollments (collaborator_id, dependent_id, financial_responsible_id, plan_id, monthly_cost, retroactive_diff, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.CollaboratorID, e.DependentID, e.FinancialResponsibleID, e.PlanID,
		e.MonthlyCostCents, e.RetroactiveDiffCents, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating enrollment: %w", err)
	}

	return nil
}

func (s *Store) GetEnrollment(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error) {
	query := `SELECT ` + selectEnrollmentColumns + ` FROM enrollments WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEnrollment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, enrollment.ErrNotFound
		}

		return nil, fmt.Errorf("getting enrollment: %w", err)
	}

	return e, nil
}

func (s *Store) ListEnrollments(ctx context.Context, filter enrollment.ListFilter) ([]*enrollment.Enrollment, error) {
	query := `SELECT ` + selectEnrollmentColumns + ` FROM enrollments WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.PlanID != nil {
		query += fmt.Sprintf(" AND plan_id = $%d", argIdx)

		args = append(args, *filter.PlanID)
		argIdx++
	}

	if filter.CollaboratorID != nil {
		query += fmt.Sprintf(" AND collaborator_id = $%d", argIdx)

		args = append(args, *filter.CollaboratorID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*enrollment.Enrollment

	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning enrollment: %w", err)
		}

		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

func (s *Store) UpdateEnrollment(ctx context.Context, e *enrollment.Enrollment) error {
	query := `
		UPDATE enrollments
		SET plan_id = $1, financial_responsible_id = $2, monthly_cost = $3, retroactive_diff = $4, status = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		e.PlanID, e.FinancialResponsibleID, e.MonthlyCostCents, e.RetroactiveDiffCents, e.Status, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating enrollment: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status enrollment.Status) error {
	query := `
		UPDATE enrollments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	if _, err := s.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating enrollment status: %w", err)
	}

	return nil
}

func (s *Store) DeleteEnrollment(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE enrollments SET deleted_at = NOW() WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting enrollment: %w", err)
	}

	return nil
}
