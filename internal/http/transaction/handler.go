package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Type          transaction.Type `json:"type"`
	Amount        int64            `json:"amount"`
	Description   string           `json:"description"`
	Date          time.Time        `json:"date"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	PlanID        *uuid.UUID       `json:"plan_id,omitempty"`
	BankAccountID *uuid.UUID       `json:"bank_account_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Type:          req.Type,
		AmountCents:   req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		DueDate:       req.DueDate,
		PlanID:        req.PlanID,
		BankAccountID: req.BankAccountID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := transaction.Status(s)
		filter.Status = &st
	}

	if s := r.URL.Query().Get("type"); s != "" {
		tp := transaction.Type(s)
		filter.Type = &tp
	}

	if s := r.URL.Query().Get("plan_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.PlanID = &id
		}
	}

	if s := r.URL.Query().Get("bank_account_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.BankAccountID = &id
		}
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

type updateTransactionRequest struct {
	Description *string    `json:"description,omitempty"`
	Amount      *int64     `json:"amount,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Reason      string     `json:"reason"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.Amount != nil {
		tx.AmountCents = *req.Amount
	}

	if req.Date != nil {
		tx.Date = *req.Date
	}

	if req.DueDate != nil {
		tx.DueDate = req.DueDate
	}

	if err := h.svc.Update(r.Context(), tx, req.Reason); err != nil {
		if errors.Is(err, transaction.ErrReasonRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

type deleteTransactionRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req deleteTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, transaction.ErrReasonRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, transaction.ErrNotFound):
			http.Error(w, "transaction not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
