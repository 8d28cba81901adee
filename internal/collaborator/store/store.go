package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/collaborator"
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

const selectCollaboratorColumns = `
	id, name, email, birth_date, created_at, updated_at, deleted_at
`

func scanCollaborator(s scanner) (*collaborator.Collaborator, error) {
	var c collaborator.Collaborator

	if err := s.Scan(&c.ID, &c.Name, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCollaborator(ctx context.Context, c *collaborator.Collaborator) error {
	query := `
		INSERT INTO collaborators (name, email, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Email, c.BirthDate).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating collaborator: %w", err)
	}

	return nil
}

func (s *Store) GetCollaborator(ctx context.Context, id uuid.UUID) (*collaborator.Collaborator, error) {
	query := `SELECT ` + selectCollaboratorColumns + ` FROM collaborators WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanCollaborator(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, collaborator.ErrNotFound
		}

		return nil, fmt.Errorf("getting collaborator: %w", err)
	}

	deps, err := s.listDependents(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Dependents = deps

	return c, nil
}

func (s *Store) ListCollaborators(ctx context.Context) ([]*collaborator.Collaborator, error) {
	query := `SELECT ` + selectCollaboratorColumns + ` FROM collaborators WHERE deleted_at IS NULL ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing collaborators: %w", err)
	}
	defer rows.Close()

	var collaborators []*collaborator.Collaborator

	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning collaborator: %w", err)
		}

		collaborators = append(collaborators, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collaborator rows: %w", err)
	}

	return collaborators, nil
}

func (s *Store) UpdateCollaborator(ctx context.Context, c *collaborator.Collaborator) error {
	query := `
		UPDATE collaborators
		SET name = $1, email = $2, birth_date = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	if _, err := s.db.ExecContext(ctx, query, c.Name, c.Email, c.BirthDate, c.ID); err != nil {
		return fmt.Errorf("updating collaborator: %w", err)
	}

	return nil
}

func (s *Store) DeleteCollaborator(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE collaborators SET deleted_at = NOW() WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting collaborator: %w", err)
	}

	return nil
}

func (s *Store) listDependents(ctx context.Context, collaboratorID uuid.UUID) ([]collaborator.Dependent, error) {
	query := `
		SELECT id, collaborator_id, name, relationship, birth_date, created_at
		FROM dependents
		WHERE collaborator_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("listing dependents: %w", err)
	}
	defer rows.Close()

	var deps []collaborator.Dependent

	for rows.Next() {
		var d collaborator.Dependent

		if err := rows.Scan(&d.ID, &d.CollaboratorID, &d.Name, &d.Relationship, &d.BirthDate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning dependent: %w", err)
		}

		deps = append(deps, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependent rows: %w", err)
	}

	return deps, nil
}

func (s *Store) CreateDependent(ctx context.Context, d *collaborator.Dependent) error {
	query := `
		INSERT INTO dependents (collaborator_id, name, relationship, birth_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, d.CollaboratorID, d.Name, d.Relationship, d.BirthDate).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating dependent: %w", err)
	}

	return nil
}

func (s *Store) GetDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) (*collaborator.Dependent, error) {
	query := `
		SELECT id, collaborator_id, name, relationship, birth_date, created_at
		FROM dependents
		WHERE id = $1 AND collaborator_id = $2
	`

	var d collaborator.Dependent

	err := s.db.QueryRowContext(ctx, query, dependentID, collaboratorID).
		Scan(&d.ID, &d.CollaboratorID, &d.Name, &d.Relationship, &d.BirthDate, &d.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, collaborator.ErrDependentNotFound
		}

		return nil, fmt.Errorf("getting dependent: %w", err)
	}

	return &d, nil
}

func (s *Store) DeleteDependent(ctx context.Context, collaboratorID, dependentID uuid.UUID) error {
	query := `DELETE FROM dependents WHERE id = $1 AND collaborator_id = $2`

	if _, err := s.db.ExecContext(ctx, query, dependentID, collaboratorID); err != nil {
		return fmt.Errorf("deleting dependent: %w", err)
	}

	return nil
}
