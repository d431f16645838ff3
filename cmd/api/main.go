package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jpcaldeira/tandem/internal/account"
	accountStore "github.com/jpcaldeira/tandem/internal/account/store"
	"github.com/jpcaldeira/tandem/internal/card"
	cardStore "github.com/jpcaldeira/tandem/internal/card/store"
	"github.com/jpcaldeira/tandem/internal/categorize"
	categorizeStore "github.com/jpcaldeira/tandem/internal/categorize/store"
	"github.com/jpcaldeira/tandem/internal/config"
	"github.com/jpcaldeira/tandem/internal/couple"
	coupleStore "github.com/jpcaldeira/tandem/internal/couple/store"
	"github.com/jpcaldeira/tandem/internal/database"
	"github.com/jpcaldeira/tandem/internal/export"
	"github.com/jpcaldeira/tandem/internal/goal"
	goalStore "github.com/jpcaldeira/tandem/internal/goal/store"
	tandemHttp "github.com/jpcaldeira/tandem/internal/http"
	accountHandler "github.com/jpcaldeira/tandem/internal/http/account"
	cardHandler "github.com/jpcaldeira/tandem/internal/http/card"
	categorizeHandler "github.com/jpcaldeira/tandem/internal/http/categorize"
	coupleHandler "github.com/jpcaldeira/tandem/internal/http/couple"
	exportHandler "github.com/jpcaldeira/tandem/internal/http/export"
	goalHandler "github.com/jpcaldeira/tandem/internal/http/goal"
	importHandler "github.com/jpcaldeira/tandem/internal/http/importcsv"
	planningHandler "github.com/jpcaldeira/tandem/internal/http/planning"
	txHandler "github.com/jpcaldeira/tandem/internal/http/transaction"
	"github.com/jpcaldeira/tandem/internal/importer"
	"github.com/jpcaldeira/tandem/internal/planning"
	planningStore "github.com/jpcaldeira/tandem/internal/planning/store"
	"github.com/jpcaldeira/tandem/internal/transaction"
	txStore "github.com/jpcaldeira/tandem/internal/transaction/store"
)

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		coupleService      = couple.NewService(coupleStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		planningService    = planning.NewService(planningStore.New(db), transactionService)
		goalService        = goal.NewService(goalStore.New(db))
		cardService        = card.NewService(cardStore.New(db))
		accountService     = account.NewService(accountStore.New(db))
		categorizeService  = categorize.NewService(categorizeStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
	)

	// Deleting a settlement transaction reverts the planning entry it
	// settled.
	transactionService.SetUnlinker(planningService)

	handlers := tandemHttp.Handlers{
		Plannings:    planningHandler.NewHandler(planningService),
		Transactions: txHandler.NewHandler(transactionService),
		Goals:        goalHandler.NewHandler(goalService),
		Cards:        cardHandler.NewHandler(cardService),
		Accounts:     accountHandler.NewHandler(accountService),
		Couple:       coupleHandler.NewHandler(coupleService),
		Categories:   categorizeHandler.NewHandler(categorizeService),
		Import:       importHandler.NewHandler(importService, transactionService, categorizeService),
		Export:       exportHandler.NewHandler(exportService),
	}

	auth := tandemHttp.Auth(cfg.Auth.JWTSecret, coupleService)
	router := tandemHttp.New(cfg.Server.AllowedOrigins, auth, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
