package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/plan"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPlanColumns = `
	id, kind, operator, name, billing_day, price_table, last_adjustment,
	created_at, updated_at, deleted_at
`

// scanPlan reads a plan row. The price table and the last adjustment snapshot
// are stored as JSONB; brackets keep their stored order.
func scanPlan(s scanner) (*plan.Plan, error) {
	var p plan.Plan

	var kindStr string

	var tableRaw []byte

	var adjustmentRaw []byte

	if err := s.Scan(
		&p.ID, &kindStr, &p.Operator, &p.Name, &p.BillingDay, &tableRaw, &adjustmentRaw,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Kind = plan.Kind(kindStr)

	if err := json.Unmarshal(tableRaw, &p.PriceTable); err != nil {
		return nil, fmt.Errorf("decoding price table: %w", err)
	}

	if len(adjustmentRaw) > 0 {
		p.LastAdjustment = &plan.Adjustment{}
		if err := json.Unmarshal(adjustmentRaw, p.LastAdjustment); err != nil {
			return nil, fmt.Errorf("decoding last adjustment: %w", err)
		}
	}

	return &p, nil
}

func encodePlan(p *plan.Plan) (tableRaw, adjustmentRaw []byte, err error) {
	tableRaw, err = json.Marshal(p.PriceTable)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding price table: %w", err)
	}

	if p.LastAdjustment != nil {
		adjustmentRaw, err = json.Marshal(p.LastAdjustment)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding last adjustment: %w", err)
		}
	}

	return tableRaw, adjustmentRaw, nil
}

func (s *Store) CreatePlan(ctx context.Context, p *plan.Plan) error {
	tableRaw, adjustmentRaw, err := encodePlan(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plans (kind, operator, name, billing_day, price_table, last_adjustment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		p.Kind, p.Operator, p.Name, p.BillingDay, tableRaw, adjustmentRaw,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating plan: %w", err)
	}

	return nil
}

func (s *Store) GetPlan(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	query := `SELECT ` + selectPlanColumns + ` FROM plans WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanPlan(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, plan.ErrNotFound
		}

		return nil, fmt.Errorf("getting plan: %w", err)
	}

	return p, nil
}

func (s *Store) ListPlans(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, error) {
	query := `SELECT ` + selectPlanColumns + ` FROM plans WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.Operator != nil {
		query += fmt.Sprintf(" AND LOWER(operator) = LOWER($%d)", argIdx)

		args = append(args, *filter.Operator)
		argIdx++
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*plan.Plan

	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}

		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan rows: %w", err)
	}

	return plans, nil
}

func (s *Store) UpdatePlan(ctx context.Context, p *plan.Plan) error {
	return updatePlan(ctx, s.db, p)
}

func (s *Store) DeletePlan(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE plans SET deleted_at = NOW() WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func updatePlan(ctx context.Context, db execer, p *plan.Plan) error {
	tableRaw, adjustmentRaw, err := encodePlan(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE plans
		SET kind = $1, operator = $2, name = $3, billing_day = $4, price_table = $5, last_adjustment = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	if _, err := db.ExecContext(ctx, query,
		p.Kind, p.Operator, p.Name, p.BillingDay, tableRaw, adjustmentRaw, p.ID,
	); err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}

	return nil
}

type adjustmentTx struct {
	tx *sql.Tx
}

// BeginAdjustment opens the unit of work for a price adjustment. The plan row
// is locked for the duration so concurrent adjustments serialize.
func (s *Store) BeginAdjustment(ctx context.Context) (plan.AdjustmentTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning adjustment tx: %w", err)
	}

	return &adjustmentTx{tx: tx}, nil
}

func (a *adjustmentTx) Commit() error   { return a.tx.Commit() }
func (a *adjustmentTx) Rollback() error { return a.tx.Rollback() }

func (a *adjustmentTx) GetPlan(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	query := `SELECT ` + selectPlanColumns + ` FROM plans WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`

	p, err := scanPlan(a.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, plan.ErrNotFound
		}

		return nil, fmt.Errorf("getting plan: %w", err)
	}

	return p, nil
}

func (a *adjustmentTx) UpdatePlan(ctx context.Context, p *plan.Plan) error {
	return updatePlan(ctx, a.tx, p)
}

// ActiveEnrollments resolves each active enrollment of the plan to the birth
// date that prices it: the dependent's when the enrollment covers a
// dependent, the collaborator's otherwise.
func (a *adjustmentTx) ActiveEnrollments(ctx context.Context, planID uuid.UUID) ([]*plan.EnrolledBeneficiary, error) {
	query := `
		SELECT e.id,
			COALESCE(d.birth_date, c.birth_date),
			CASE WHEN e.dependent_id IS NULL THEN 'titular' ELSE 'dependente' END,
			e.monthly_cost, e.retroactive_diff
		FROM enrollments e
		JOIN collaborators c ON c.id = e.collaborator_id
		LEFT JOIN dependents d ON d.id = e.dependent_id
		WHERE e.plan_id = $1 AND e.status = 'active' AND e.deleted_at IS NULL
		FOR UPDATE OF e
	`

	rows, err := a.tx.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing active enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*plan.EnrolledBeneficiary

	for rows.Next() {
		var e plan.EnrolledBeneficiary

		var beneficiaryStr string

		if err := rows.Scan(&e.EnrollmentID, &e.BirthDate, &beneficiaryStr, &e.MonthlyCostCents, &e.RetroactiveDiffCents); err != nil {
			return nil, fmt.Errorf("scanning enrollment: %w", err)
		}

		e.Beneficiary = plan.BeneficiaryType(beneficiaryStr)
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

func (a *adjustmentTx) UpdateEnrollmentCost(ctx context.Context, enrollmentID uuid.UUID, monthlyCostCents, retroactiveDiffCents int64) error {
	query := `
		UPDATE enrollments
		SET monthly_cost = $1, retroactive_diff = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	if _, err := a.tx.ExecContext(ctx, query, monthlyCostCents, retroactiveDiffCents, enrollmentID); err != nil {
		return fmt.Errorf("updating enrollment cost: %w", err)
	}

	return nil
}
