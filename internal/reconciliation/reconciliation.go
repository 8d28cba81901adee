// Package reconciliation matches imported statement entries against pending
// transactions and settles confirmed matches.
package reconciliation

import (
	"errors"

	"github.com/rfmachado/backoffice/internal/ofx"
	"github.com/rfmachado/backoffice/internal/transaction"
)

var (
	// ErrAlreadyReconciled guards against double settlement, which would
	// apply the balance movement twice.
	ErrAlreadyReconciled = errors.New("transaction already reconciled")

	// ErrNoBankAccount means the transaction has no linked account to move
	// the balance on.
	ErrNoBankAccount = errors.New("transaction has no linked bank account")
)

// matchWindowDays bounds how far a statement entry's date may drift from the
// transaction date and still count as a candidate.
const matchWindowDays = 3

// MatchResult pairs a statement entry with its candidate transactions. Zero
// or multiple candidates are valid outcomes; picking one is the caller's
// decision.
type MatchResult struct {
	Entry   ofx.Entry                  `json:"entry"`
	Matches []*transaction.Transaction `json:"matches"`
}
