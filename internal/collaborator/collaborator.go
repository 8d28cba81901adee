package collaborator

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("collaborator not found")
	ErrDependentNotFound = errors.New("dependent not found")
)

// Collaborator is an employee of the organization.
type Collaborator struct {
	ID         uuid.UUID
	Name       string
	Email      string
	BirthDate  time.Time
	Dependents []Dependent
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// Dependent is a family member covered under a collaborator's enrollment.
// Dependents are first-class rows keyed by collaborator, so lookups are
// indexed instead of scanning an embedded list.
type Dependent struct {
	ID             uuid.UUID
	CollaboratorID uuid.UUID
	Name           string
	Relationship   string
	BirthDate      time.Time
	CreatedAt      time.Time
}
