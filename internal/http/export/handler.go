package export

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/export"
	"github.com/jpcaldeira/tandem/internal/session"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions", h.transactionsCSV)
}

func (h *Handler) transactionsCSV(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		t := transaction.Type(s)
		filter.Type = &t
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}

	if s := r.URL.Query().Get("card_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid card_id", http.StatusBadRequest)
			return
		}

		filter.CardID = &id
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		filter.EndDate = &t
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.svc.WriteCSV(r.Context(), sess, filter, w); err != nil {
		if errors.Is(err, transaction.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
