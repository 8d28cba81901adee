package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status represents the lifecycle state of a transaction. Pending
// transactions can be regenerated by billing runs; paid transactions are
// immutable for billing purposes.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Transaction represents a financial record: a plan invoice, a responsible
// party's monthly charge, or a manually entered income/expense.
type Transaction struct {
	ID                     uuid.UUID
	Type                   Type
	AmountCents            int64
	Status                 Status
	Description            string
	Date                   time.Time
	DueDate                *time.Time
	PlanID                 *uuid.UUID
	FinancialResponsibleID *uuid.UUID
	BankAccountID          *uuid.UUID
	Reconciled             bool
	SettlementDate         *time.Time
	CreatedAt              time.Time
	UpdatedAt              *time.Time
	DeletedAt              *time.Time
}
