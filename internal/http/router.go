package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jpcaldeira/tandem/internal/http/account"
	"github.com/jpcaldeira/tandem/internal/http/card"
	"github.com/jpcaldeira/tandem/internal/http/categorize"
	"github.com/jpcaldeira/tandem/internal/http/couple"
	"github.com/jpcaldeira/tandem/internal/http/export"
	"github.com/jpcaldeira/tandem/internal/http/goal"
	"github.com/jpcaldeira/tandem/internal/http/importcsv"
	"github.com/jpcaldeira/tandem/internal/http/planning"
	"github.com/jpcaldeira/tandem/internal/http/transaction"
)

type Handlers struct {
	Plannings    *planning.Handler
	Transactions *transaction.Handler
	Goals        *goal.Handler
	Cards        *card.Handler
	Accounts     *account.Handler
	Couple       *couple.Handler
	Categories   *categorize.Handler
	Import       *importcsv.Handler
	Export       *export.Handler
}

func New(allowedOrigins []string, auth func(http.Handler) http.Handler, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth)

		r.Route("/plannings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Plannings.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Transactions.Routes(r)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Goals.Routes(r)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Cards.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Accounts.Routes(r)
		})

		r.Route("/couple", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Couple.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			h.Categories.Routes(r)
		})

		r.Route("/import", h.Import.Routes)

		r.Route("/export", h.Export.Routes)
	})

	return router
}
