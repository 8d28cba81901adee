package billing

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/billing"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/generate", h.generate)
}

type generateRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type transactionResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Type                   string     `json:"type"`
	Amount                 int64      `json:"amount"`
	Status                 string     `json:"status"`
	Description            string     `json:"description"`
	Date                   time.Time  `json:"date"`
	DueDate                *time.Time `json:"due_date,omitempty"`
	FinancialResponsibleID *uuid.UUID `json:"financial_responsible_id,omitempty"`
}

type generateResponse struct {
	Generated    int                   `json:"generated"`
	Transactions []transactionResponse `json:"transactions"`
}

// generate runs the monthly billing for every financial responsible with
// active enrollments. Responsibles whose period is already settled are
// skipped, so the run can be repeated safely.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Year < 2000 || req.Month < 1 || req.Month > 12 {
		http.Error(w, "invalid billing period", http.StatusBadRequest)
		return
	}

	txs, err := h.svc.GenerateResponsibleBilling(r.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := generateResponse{
		Generated:    len(txs),
		Transactions: make([]transactionResponse, 0, len(txs)),
	}

	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, transactionResponse{
			ID:                     tx.ID,
			Type:                   string(tx.Type),
			Amount:                 tx.AmountCents,
			Status:                 string(tx.Status),
			Description:            tx.Description,
			Date:                   tx.Date,
			DueDate:                tx.DueDate,
			FinancialResponsibleID: tx.FinancialResponsibleID,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
