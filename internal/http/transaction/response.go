package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/transaction"
)

type transactionResponse struct {
	ID                     uuid.UUID          `json:"id"`
	Type                   transaction.Type   `json:"type"`
	Amount                 int64              `json:"amount"`
	Status                 transaction.Status `json:"status"`
	Description            string             `json:"description"`
	Date                   time.Time          `json:"date"`
	DueDate                *time.Time         `json:"due_date,omitempty"`
	PlanID                 *uuid.UUID         `json:"plan_id,omitempty"`
	FinancialResponsibleID *uuid.UUID         `json:"financial_responsible_id,omitempty"`
	BankAccountID          *uuid.UUID         `json:"bank_account_id,omitempty"`
	Reconciled             bool               `json:"reconciled"`
	SettlementDate         *time.Time         `json:"settlement_date,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                     tx.ID,
		Type:                   tx.Type,
		Amount:                 tx.AmountCents,
		Status:                 tx.Status,
		Description:            tx.Description,
		Date:                   tx.Date,
		DueDate:                tx.DueDate,
		PlanID:                 tx.PlanID,
		FinancialResponsibleID: tx.FinancialResponsibleID,
		BankAccountID:          tx.BankAccountID,
		Reconciled:             tx.Reconciled,
		SettlementDate:         tx.SettlementDate,
		CreatedAt:              tx.CreatedAt,
		UpdatedAt:              tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
