package enrollment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/collaborator"
	"github.com/rfmachado/backoffice/internal/enrollment"
	"github.com/rfmachado/backoffice/internal/plan"
)

type Handler struct {
	svc *enrollment.Service
}

func NewHandler(svc *enrollment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/plan", h.changePlan)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
}

type enrollmentResponse struct {
	ID                     uuid.UUID         `json:"id"`
	CollaboratorID         uuid.UUID         `json:"collaborator_id"`
	DependentID            *uuid.UUID        `json:"dependent_id,omitempty"`
	FinancialResponsibleID uuid.UUID         `json:"financial_responsible_id"`
	PlanID                 uuid.UUID         `json:"plan_id"`
	MonthlyCost            int64             `json:"monthly_cost"`
	RetroactiveDiff        int64             `json:"retroactive_diff"`
	Status                 enrollment.Status `json:"status"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(e *enrollment.Enrollment) enrollmentResponse {
	return enrollmentResponse{
		ID:                     e.ID,
		CollaboratorID:         e.CollaboratorID,
		DependentID:            e.DependentID,
		FinancialResponsibleID: e.FinancialResponsibleID,
		PlanID:                 e.PlanID,
		MonthlyCost:            e.MonthlyCostCents,
		RetroactiveDiff:        e.RetroactiveDiffCents,
		Status:                 e.Status,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

type createEnrollmentRequest struct {
	CollaboratorID         uuid.UUID  `json:"collaborator_id"`
	DependentID            *uuid.UUID `json:"dependent_id,omitempty"`
	FinancialResponsibleID uuid.UUID  `json:"financial_responsible_id"`
	PlanID                 uuid.UUID  `json:"plan_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), enrollment.CreateParams{
		CollaboratorID:         req.CollaboratorID,
		DependentID:            req.DependentID,
		FinancialResponsibleID: req.FinancialResponsibleID,
		PlanID:                 req.PlanID,
	})
	if err != nil {
		var pricingErr *plan.PricingError

		switch {
		case errors.As(err, &pricingErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, plan.ErrNotFound), errors.Is(err, collaborator.ErrNotFound),
			errors.Is(err, collaborator.ErrDependentNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := enrollment.ListFilter{}

	if s := r.URL.Query().Get("plan_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.PlanID = &id
		}
	}

	if s := r.URL.Query().Get("collaborator_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CollaboratorID = &id
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		st := enrollment.Status(s)
		filter.Status = &st
	}

	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]enrollmentResponse, len(list))
	for i, e := range list {
		resp[i] = toResponse(e)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, enrollment.ErrNotFound) {
			http.Error(w, "enrollment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

type changePlanRequest struct {
	PlanID uuid.UUID `json:"plan_id"`
}

func (h *Handler) changePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req changePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.ChangePlan(r.Context(), id, req.PlanID)
	if err != nil {
		var pricingErr *plan.PricingError

		switch {
		case errors.As(err, &pricingErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, enrollment.ErrNotFound), errors.Is(err, plan.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

type updateStatusRequest struct {
	Status enrollment.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Status != enrollment.StatusActive && req.Status != enrollment.StatusInactive {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, enrollment.ErrNotFound) {
			http.Error(w, "enrollment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, enrollment.ErrNotFound) {
			http.Error(w, "enrollment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
