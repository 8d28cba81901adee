package plan

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/billing"
	"github.com/rfmachado/backoffice/internal/plan"
)

type Handler struct {
	svc        *plan.Service
	billingSvc *billing.Service
}

func NewHandler(svc *plan.Service, billingSvc *billing.Service) *Handler {
	return &Handler{svc: svc, billingSvc: billingSvc}
}

// KindRoutes mounts the plan CRUD plus the adjustment and billing operations
// scoped to one plan family, so /health-plans and /dental-plans share the
// same handler.
func (h *Handler) KindRoutes(kind plan.Kind) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/", h.create(kind))
		r.Get("/", h.list(kind))
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
		r.Post("/{id}/apply-adjustment", h.applyAdjustment)
		r.Post("/{id}/generate-billing", h.generateBilling)
	}
}

func (h *Handler) HealthRoutes(r chi.Router) { h.KindRoutes(plan.KindHealth)(r) }
func (h *Handler) DentalRoutes(r chi.Router) { h.KindRoutes(plan.KindDental)(r) }

// OperatorRoutes mounts the batch operations that cut across plan kinds.
func (h *Handler) OperatorRoutes(r chi.Router) {
	r.Post("/apply-adjustment-by-operator", h.adjustByOperator)
}

type bracketDTO struct {
	MinAge      int                  `json:"min_age"`
	MaxAge      int                  `json:"max_age"`
	Beneficiary plan.BeneficiaryType `json:"beneficiary_type"`
	Amount      int64                `json:"amount"`
}

type createPlanRequest struct {
	Operator   string       `json:"operator"`
	Name       string       `json:"name"`
	BillingDay int          `json:"billing_day"`
	PriceTable []bracketDTO `json:"price_table"`
}

func toBrackets(dtos []bracketDTO) []plan.PriceBracket {
	table := make([]plan.PriceBracket, len(dtos))
	for i, b := range dtos {
		table[i] = plan.PriceBracket{
			MinAge:      b.MinAge,
			MaxAge:      b.MaxAge,
			Beneficiary: b.Beneficiary,
			AmountCents: b.Amount,
		}
	}

	return table
}

func (h *Handler) create(kind plan.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := h.svc.Create(r.Context(), plan.CreateParams{
			Kind:       kind,
			Operator:   req.Operator,
			Name:       req.Name,
			BillingDay: req.BillingDay,
			PriceTable: toBrackets(req.PriceTable),
		})
		if err != nil {
			if errors.Is(err, plan.ErrInvalidPlan) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		writeJSON(w, http.StatusCreated, toResponse(p))
	}
}

func (h *Handler) list(kind plan.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := plan.ListFilter{Kind: &kind}

		if s := r.URL.Query().Get("operator"); s != "" {
			filter.Operator = &s
		}

		plans, err := h.svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toResponseList(plans))
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

type updatePlanRequest struct {
	Operator   *string      `json:"operator,omitempty"`
	Name       *string      `json:"name,omitempty"`
	BillingDay *int         `json:"billing_day,omitempty"`
	PriceTable []bracketDTO `json:"price_table,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Operator != nil {
		p.Operator = *req.Operator
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.BillingDay != nil {
		p.BillingDay = *req.BillingDay
	}

	if req.PriceTable != nil {
		p.PriceTable = toBrackets(req.PriceTable)
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type adjustRequest struct {
	Percentage        float64 `json:"percentage"`
	ApplyRetroactive  bool    `json:"applyRetroactive"`
	RetroactiveMonths int     `json:"retroactiveMonths"`
}

func (h *Handler) applyAdjustment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.ApplyAdjustment(r.Context(), id, plan.AdjustParams{
		Percentage:        req.Percentage,
		ApplyRetroactive:  req.ApplyRetroactive,
		RetroactiveMonths: req.RetroactiveMonths,
	})
	if err != nil {
		var pricingErr *plan.PricingError

		switch {
		case errors.Is(err, plan.ErrNotFound):
			http.Error(w, "plan not found", http.StatusNotFound)
		case errors.As(err, &pricingErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

type adjustByOperatorRequest struct {
	Operator          string  `json:"operator"`
	Percentage        float64 `json:"percentage"`
	ApplyRetroactive  bool    `json:"applyRetroactive"`
	RetroactiveMonths int     `json:"retroactiveMonths"`
}

type planFailureResponse struct {
	PlanID uuid.UUID `json:"plan_id"`
	Name   string    `json:"name"`
	Error  string    `json:"error"`
}

type adjustByOperatorResponse struct {
	Adjusted []planResponse        `json:"adjusted"`
	Failed   []planFailureResponse `json:"failed"`
}

func (h *Handler) adjustByOperator(w http.ResponseWriter, r *http.Request) {
	var req adjustByOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Operator == "" {
		http.Error(w, "operator is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AdjustByOperator(r.Context(), req.Operator, plan.AdjustParams{
		Percentage:        req.Percentage,
		ApplyRetroactive:  req.ApplyRetroactive,
		RetroactiveMonths: req.RetroactiveMonths,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := adjustByOperatorResponse{
		Adjusted: toResponseList(result.Adjusted),
		Failed:   make([]planFailureResponse, 0, len(result.Failed)),
	}

	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, planFailureResponse{
			PlanID: f.PlanID,
			Name:   f.Name,
			Error:  f.Err.Error(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type generateBillingRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type billingTransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (h *Handler) generateBilling(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req generateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Year < 2000 || req.Month < 1 || req.Month > 12 {
		http.Error(w, "invalid billing period", http.StatusBadRequest)
		return
	}

	tx, err := h.billingSvc.GeneratePlanBilling(r.Context(), id, req.Year, time.Month(req.Month))
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrNotFound):
			http.Error(w, "plan not found", http.StatusNotFound)
		case errors.Is(err, billing.ErrNothingToBill), errors.Is(err, billing.ErrPeriodPaid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, billingTransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.AmountCents,
		Status:      string(tx.Status),
		Description: tx.Description,
		Date:        tx.Date,
		DueDate:     tx.DueDate,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
