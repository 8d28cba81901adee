package bankaccount

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("bank account not found")

// Account is an organization bank account. The balance is only mutated by
// reconciliation confirmations.
type Account struct {
	ID           uuid.UUID
	Name         string
	BankCode     string
	BalanceCents int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
