package planning

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/planning"
	"github.com/jpcaldeira/tandem/internal/session"
)

type Handler struct {
	svc *planning.Service
}

func NewHandler(svc *planning.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pay", h.pay)
	r.Post("/{id}/reverse", h.reverse)
}

type createEntryRequest struct {
	Description  string    `json:"description"`
	Amount       int64     `json:"amount"`
	Category     string    `json:"category"`
	DueDate      time.Time `json:"due_date"`
	Installments int       `json:"installments"`
	IsRecurring  bool      `json:"is_recurring"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.Create(r.Context(), sess, planning.CreateParams{
		Description:  req.Description,
		Amount:       req.Amount,
		Category:     req.Category,
		DueDate:      req.DueDate,
		Installments: req.Installments,
		IsRecurring:  req.IsRecurring,
	})
	if err != nil {
		if errors.Is(err, planning.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	filter := planning.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := planning.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}

	if s := r.URL.Query().Get("group_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid group_id", http.StatusBadRequest)
			return
		}

		filter.GroupID = &id
	}

	entries, err := h.svc.List(r.Context(), sess, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Get(r.Context(), sess, id)
	if err != nil {
		if errors.Is(err, planning.ErrNotFound) {
			http.Error(w, "planning entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateEntryRequest struct {
	Description *string    `json:"description,omitempty"`
	Amount      *int64     `json:"amount,omitempty"`
	Category    *string    `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsRecurring *bool      `json:"is_recurring,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Get(r.Context(), sess, id)
	if err != nil {
		if errors.Is(err, planning.ErrNotFound) {
			http.Error(w, "planning entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Description != nil {
		entry.Description = *req.Description
	}

	if req.Amount != nil {
		entry.Amount = *req.Amount
	}

	if req.Category != nil {
		entry.Category = *req.Category
	}

	if req.DueDate != nil {
		entry.DueDate = *req.DueDate
	}

	if req.IsRecurring != nil {
		entry.IsRecurring = *req.IsRecurring
	}

	updated, err := h.svc.Update(r.Context(), sess, entry)
	if err != nil {
		if errors.Is(err, planning.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), sess, id); err != nil {
		if errors.Is(err, planning.ErrNotFound) {
			http.Error(w, "planning entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.MarkAsPaid(r.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, planning.ErrNotFound):
			http.Error(w, "planning entry not found", http.StatusNotFound)
		case errors.Is(err, planning.ErrInconsistent):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Reverse(r.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, planning.ErrNotFound):
			http.Error(w, "planning entry not found", http.StatusNotFound)
		case errors.Is(err, planning.ErrInconsistent):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
