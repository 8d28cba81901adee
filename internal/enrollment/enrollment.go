package enrollment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("enrollment not found")

// Status represents whether an enrollment is currently billed.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Enrollment links a beneficiary (a collaborator, or one of their dependents)
// to a benefit plan. MonthlyCostCents is the authoritative current price;
// RetroactiveDiffCents accrues back-pay from retroactive adjustments until the
// next billing run folds it into an invoice and zeroes it.
type Enrollment struct {
	ID                     uuid.UUID
	CollaboratorID         uuid.UUID
	DependentID            *uuid.UUID
	FinancialResponsibleID uuid.UUID
	PlanID                 uuid.UUID
	MonthlyCostCents       int64
	RetroactiveDiffCents   int64
	Status                 Status
	CreatedAt              time.Time
	UpdatedAt              *time.Time
	DeletedAt              *time.Time
}
