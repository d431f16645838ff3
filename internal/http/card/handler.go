package card

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/card"
	"github.com/jpcaldeira/tandem/internal/session"
)

type Handler struct {
	svc *card.Service
}

func NewHandler(svc *card.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/recalculate", h.recalculate)
}

type cardResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	Type           card.Type  `json:"type"`
	Bank           string     `json:"bank"`
	LastFour       string     `json:"last_four"`
	Limit          int64      `json:"limit"`
	CurrentBalance int64      `json:"current_balance"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *card.Card) cardResponse {
	return cardResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		Type:           c.Type,
		Bank:           c.Bank,
		LastFour:       c.LastFour,
		Limit:          c.Limit,
		CurrentBalance: c.CurrentBalance,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type createCardRequest struct {
	Name     string    `json:"name"`
	Type     card.Type `json:"type"`
	Bank     string    `json:"bank"`
	LastFour string    `json:"last_four"`
	Limit    int64     `json:"limit"`
	Balance  int64     `json:"balance"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), sess, card.CreateParams{
		Name:     req.Name,
		Type:     req.Type,
		Bank:     req.Bank,
		LastFour: req.LastFour,
		Limit:    req.Limit,
		Balance:  req.Balance,
	})
	if err != nil {
		if errors.Is(err, card.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	cards, err := h.svc.List(r.Context(), sess)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
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

	c, err := h.svc.Get(r.Context(), sess, id)
	if err != nil {
		if errors.Is(err, card.ErrNotFound) {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCardRequest struct {
	Name     *string `json:"name,omitempty"`
	Bank     *string `json:"bank,omitempty"`
	LastFour *string `json:"last_four,omitempty"`
	Limit    *int64  `json:"limit,omitempty"`
	Balance  *int64  `json:"balance,omitempty"`
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

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), sess, id)
	if err != nil {
		if errors.Is(err, card.ErrNotFound) {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Bank != nil {
		c.Bank = *req.Bank
	}

	if req.LastFour != nil {
		c.LastFour = *req.LastFour
	}

	if req.Limit != nil {
		c.Limit = *req.Limit
	}

	if req.Balance != nil {
		c.CurrentBalance = *req.Balance
	}

	updated, err := h.svc.Update(r.Context(), sess, c)
	if err != nil {
		if errors.Is(err, card.ErrInvalid) {
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
		if errors.Is(err, card.ErrNotFound) {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recalculate(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.RecalculateBalance(r.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, card.ErrNotFound):
			http.Error(w, "card not found", http.StatusNotFound)
		case errors.Is(err, card.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
