package couple

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/couple"
	"github.com/jpcaldeira/tandem/internal/session"
)

type Handler struct {
	svc *couple.Service
}

func NewHandler(svc *couple.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.current)
	r.Post("/", h.create)
	r.Patch("/", h.rename)
	r.Post("/leave", h.leave)
	r.Post("/invites", h.invite)
	r.Get("/invites", h.listInvites)
	r.Post("/invites/{id}/accept", h.accept)
	r.Post("/invites/{id}/reject", h.reject)
}

type coupleResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	CreatedBy uuid.UUID         `json:"created_by"`
	CreatedAt time.Time         `json:"created_at"`
	Members   []profileResponse `json:"members,omitempty"`
}

type profileResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type inviteResponse struct {
	ID           uuid.UUID           `json:"id"`
	CoupleID     uuid.UUID           `json:"couple_id"`
	InvitedEmail string              `json:"invited_email"`
	InvitedBy    uuid.UUID           `json:"invited_by"`
	Status       couple.InviteStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
}

func toCoupleResponse(c *couple.Couple, members []*couple.Profile) coupleResponse {
	resp := coupleResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}

	for _, m := range members {
		resp.Members = append(resp.Members, profileResponse{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
		})
	}

	return resp
}

func toInviteResponse(inv *couple.Invite) inviteResponse {
	return inviteResponse{
		ID:           inv.ID,
		CoupleID:     inv.CoupleID,
		InvitedEmail: inv.InvitedEmail,
		InvitedBy:    inv.InvitedBy,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	c, members, err := h.svc.Current(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, couple.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if c == nil {
		http.Error(w, "not in a couple", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCoupleResponse(c, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createCoupleRequest struct {
	Name string `json:"name"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req createCoupleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), sess.UserID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, couple.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, couple.ErrAlreadyGrouped):
			http.Error(w, "already in a couple", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toCoupleResponse(c, nil)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type renameCoupleRequest struct {
	Name string `json:"name"`
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req renameCoupleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Rename(r.Context(), sess.UserID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, couple.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, couple.ErrNotFound):
			http.Error(w, "not in a couple", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCoupleResponse(c, nil)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) leave(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := h.svc.Leave(r.Context(), sess.UserID); err != nil {
		if errors.Is(err, couple.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type inviteRequest struct {
	Email string `json:"email"`
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Invite(r.Context(), sess.UserID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, couple.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, couple.ErrAlreadyInvited):
			http.Error(w, "already invited", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toInviteResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listInvites(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var (
		invites []*couple.Invite
		err     error
	)

	switch r.URL.Query().Get("box") {
	case "sent":
		invites, err = h.svc.SentInvites(r.Context(), sess.UserID)
	default:
		invites, err = h.svc.ReceivedInvites(r.Context(), sess.UserID)
	}

	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]inviteResponse, len(invites))
	for i, inv := range invites {
		resp[i] = toInviteResponse(inv)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Accept(r.Context(), sess.UserID, id); err != nil {
		switch {
		case errors.Is(err, couple.ErrInviteNotFound):
			http.Error(w, "invite not found", http.StatusNotFound)
		case errors.Is(err, couple.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, couple.ErrAlreadyGrouped):
			http.Error(w, "already in a couple", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Reject(r.Context(), sess.UserID, id); err != nil {
		if errors.Is(err, couple.ErrInviteNotFound) {
			http.Error(w, "invite not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
