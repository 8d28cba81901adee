package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rfmachado/backoffice/internal/audit"
	auditStore "github.com/rfmachado/backoffice/internal/audit/store"
	"github.com/rfmachado/backoffice/internal/auth"
	authStore "github.com/rfmachado/backoffice/internal/auth/store"
	"github.com/rfmachado/backoffice/internal/bankaccount"
	bankAccountStore "github.com/rfmachado/backoffice/internal/bankaccount/store"
	"github.com/rfmachado/backoffice/internal/billing"
	billingStore "github.com/rfmachado/backoffice/internal/billing/store"
	"github.com/rfmachado/backoffice/internal/collaborator"
	collaboratorStore "github.com/rfmachado/backoffice/internal/collaborator/store"
	"github.com/rfmachado/backoffice/internal/config"
	"github.com/rfmachado/backoffice/internal/database"
	"github.com/rfmachado/backoffice/internal/enrollment"
	enrollmentStore "github.com/rfmachado/backoffice/internal/enrollment/store"
	api "github.com/rfmachado/backoffice/internal/http"
	authHandler "github.com/rfmachado/backoffice/internal/http/auth"
	bankAccountHandler "github.com/rfmachado/backoffice/internal/http/bankaccount"
	billingHandler "github.com/rfmachado/backoffice/internal/http/billing"
	collaboratorHandler "github.com/rfmachado/backoffice/internal/http/collaborator"
	enrollmentHandler "github.com/rfmachado/backoffice/internal/http/enrollment"
	planHandler "github.com/rfmachado/backoffice/internal/http/plan"
	reconciliationHandler "github.com/rfmachado/backoffice/internal/http/reconciliation"
	txHandler "github.com/rfmachado/backoffice/internal/http/transaction"
	"github.com/rfmachado/backoffice/internal/plan"
	planStore "github.com/rfmachado/backoffice/internal/plan/store"
	"github.com/rfmachado/backoffice/internal/reconciliation"
	reconciliationStore "github.com/rfmachado/backoffice/internal/reconciliation/store"
	"github.com/rfmachado/backoffice/internal/transaction"
	txStore "github.com/rfmachado/backoffice/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpMinutes)

	var (
		auditService          = audit.NewService(auditStore.New(db))
		authService           = auth.NewService(authStore.New(db), tokens)
		planService           = plan.NewService(planStore.New(db), plan.PricingPolicy(cfg.Pricing.AdjustmentPolicy))
		collaboratorService   = collaborator.NewService(collaboratorStore.New(db))
		enrollmentService     = enrollment.NewService(enrollmentStore.New(db), planService, collaboratorService)
		billingService        = billing.NewService(billingStore.New(db), cfg.Billing.DefaultDueDay)
		transactionService    = transaction.NewService(txStore.New(db), auditService)
		bankAccountService    = bankaccount.NewService(bankAccountStore.New(db))
		reconciliationService = reconciliation.NewService(reconciliationStore.New(db))
	)

	router := api.New(
		auth.RequireAuth(tokens),
		authHandler.NewHandler(authService),
		planHandler.NewHandler(planService, billingService),
		billingHandler.NewHandler(billingService),
		collaboratorHandler.NewHandler(collaboratorService),
		enrollmentHandler.NewHandler(enrollmentService),
		bankAccountHandler.NewHandler(bankAccountService),
		txHandler.NewHandler(transactionService),
		reconciliationHandler.NewHandler(reconciliationService),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
