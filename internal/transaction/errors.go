package transaction

import "errors"

var (
	ErrNotFound = errors.New("transaction not found")

	// ErrReasonRequired guards edits and deletes of financial records: a
	// justification of at least five characters must accompany them.
	ErrReasonRequired = errors.New("a reason of at least 5 characters is required")
)

const minReasonLength = 5

// ValidateReason enforces the justification rule for mutations of financial
// records.
func ValidateReason(reason string) error {
	if len(reason) < minReasonLength {
		return ErrReasonRequired
	}

	return nil
}
