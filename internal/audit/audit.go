package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action classifies what happened to a financial record.
type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionLiquidate Action = "liquidate"
)

// Entry is an append-only audit record for a transaction mutation. Entries
// are never updated or deleted.
type Entry struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	Action        Action
	Previous      json.RawMessage
	Next          json.RawMessage
	Reason        string
	CreatedAt     time.Time
}

// Snapshot serializes a record state for the Previous/Next fields. A value
// that cannot be marshalled yields a null snapshot rather than an error; the
// audit trail must never block the mutation it describes.
func Snapshot(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}

	return raw
}
