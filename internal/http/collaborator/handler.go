package collaborator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/collaborator"
)

type Handler struct {
	svc *collaborator.Service
}

func NewHandler(svc *collaborator.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/dependents", h.addDependent)
	r.Delete("/{id}/dependents/{dependentID}", h.removeDependent)
}

type dependentDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	BirthDate    time.Time `json:"birth_date"`
}

type collaboratorResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	BirthDate  time.Time      `json:"birth_date"`
	Dependents []dependentDTO `json:"dependents"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(c *collaborator.Collaborator) collaboratorResponse {
	deps := make([]dependentDTO, len(c.Dependents))
	for i, d := range c.Dependents {
		deps[i] = dependentDTO{
			ID:           d.ID,
			Name:         d.Name,
			Relationship: d.Relationship,
			BirthDate:    d.BirthDate,
		}
	}

	return collaboratorResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		BirthDate:  c.BirthDate,
		Dependents: deps,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type createCollaboratorRequest struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCollaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.BirthDate.IsZero() {
		http.Error(w, "name and birth_date are required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), collaborator.CreateParams{
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cols, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]collaboratorResponse, len(cols))
	for i, c := range cols {
		resp[i] = toResponse(c)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, collaborator.ErrNotFound) {
			http.Error(w, "collaborator not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

type updateCollaboratorRequest struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCollaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, collaborator.ErrNotFound) {
			http.Error(w, "collaborator not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Email != nil {
		c.Email = *req.Email
	}

	if req.BirthDate != nil {
		c.BirthDate = *req.BirthDate
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, collaborator.ErrNotFound) {
			http.Error(w, "collaborator not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addDependentRequest struct {
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	BirthDate    time.Time `json:"birth_date"`
}

func (h *Handler) addDependent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addDependentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.BirthDate.IsZero() {
		http.Error(w, "name and birth_date are required", http.StatusBadRequest)
		return
	}

	dep, err := h.svc.AddDependent(r.Context(), id, collaborator.DependentParams{
		Name:         req.Name,
		Relationship: req.Relationship,
		BirthDate:    req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, collaborator.ErrNotFound) {
			http.Error(w, "collaborator not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, dependentDTO{
		ID:           dep.ID,
		Name:         dep.Name,
		Relationship: dep.Relationship,
		BirthDate:    dep.BirthDate,
	})
}

func (h *Handler) removeDependent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	depID, err := uuid.Parse(chi.URLParam(r, "dependentID"))
	if err != nil {
		http.Error(w, "invalid dependent id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveDependent(r.Context(), id, depID); err != nil {
		if errors.Is(err, collaborator.ErrNotFound) || errors.Is(err, collaborator.ErrDependentNotFound) {
			http.Error(w, "dependent not found", http.StatusNotFound)
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
