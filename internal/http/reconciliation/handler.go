package reconciliation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/bankaccount"
	"github.com/rfmachado/backoffice/internal/ofx"
	"github.com/rfmachado/backoffice/internal/reconciliation"
	"github.com/rfmachado/backoffice/internal/transaction"
)

type Handler struct {
	svc *reconciliation.Service
}

func NewHandler(svc *reconciliation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/upload", h.upload)
	r.Post("/matches", h.matches)
	r.Post("/confirm", h.confirm)
}

type uploadResponse struct {
	ImportID     uuid.UUID   `json:"importId"`
	Transactions []ofx.Entry `json:"transactions"`
}

// upload parses an OFX statement file and returns its entries. Entries live
// only for the reconciliation flow; nothing is persisted here.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entries, err := ofx.Parse(file)
	if err != nil {
		if errors.Is(err, ofx.ErrMalformedStatement) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if entries == nil {
		entries = []ofx.Entry{}
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		ImportID:     uuid.New(),
		Transactions: entries,
	})
}

type matchesRequest struct {
	Entries       []ofx.Entry `json:"entries"`
	BankAccountID uuid.UUID   `json:"bankAccountId"`
}

func (h *Handler) matches(w http.ResponseWriter, r *http.Request) {
	var req matchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.BankAccountID == uuid.Nil {
		http.Error(w, "bankAccountId is required", http.StatusBadRequest)
		return
	}

	results, err := h.svc.SuggestMatches(r.Context(), req.Entries, req.BankAccountID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

type confirmRequest struct {
	TransactionID  uuid.UUID `json:"transactionId"`
	SettlementDate time.Time `json:"settlementDate"`
	Reason         string    `json:"reason"`
}

type confirmResponse struct {
	ID             uuid.UUID  `json:"id"`
	Type           string     `json:"type"`
	Amount         int64      `json:"amount"`
	Status         string     `json:"status"`
	Description    string     `json:"description"`
	Reconciled     bool       `json:"reconciled"`
	SettlementDate *time.Time `json:"settlement_date,omitempty"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.TransactionID == uuid.Nil || req.SettlementDate.IsZero() || req.Reason == "" {
		http.Error(w, "transactionId, settlementDate and reason are required", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Confirm(r.Context(), reconciliation.ConfirmParams{
		TransactionID:  req.TransactionID,
		SettlementDate: req.SettlementDate,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, transaction.ErrReasonRequired),
			errors.Is(err, reconciliation.ErrAlreadyReconciled),
			errors.Is(err, reconciliation.ErrNoBankAccount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, transaction.ErrNotFound):
			http.Error(w, "transaction not found", http.StatusNotFound)
		case errors.Is(err, bankaccount.ErrNotFound):
			http.Error(w, "bank account not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, confirmResponse{
		ID:             tx.ID,
		Type:           string(tx.Type),
		Amount:         tx.AmountCents,
		Status:         string(tx.Status),
		Description:    tx.Description,
		Reconciled:     tx.Reconciled,
		SettlementDate: tx.SettlementDate,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
