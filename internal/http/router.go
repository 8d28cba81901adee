package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rfmachado/backoffice/internal/http/auth"
	"github.com/rfmachado/backoffice/internal/http/bankaccount"
	"github.com/rfmachado/backoffice/internal/http/billing"
	"github.com/rfmachado/backoffice/internal/http/collaborator"
	"github.com/rfmachado/backoffice/internal/http/enrollment"
	"github.com/rfmachado/backoffice/internal/http/plan"
	"github.com/rfmachado/backoffice/internal/http/reconciliation"
	"github.com/rfmachado/backoffice/internal/http/transaction"
)

// New assembles the API router. Auth endpoints and the health probe are
// public; everything else sits behind the bearer-token middleware.
func New(
	requireAuth func(http.Handler) http.Handler,
	authH *auth.Handler,
	planH *plan.Handler,
	billingH *billing.Handler,
	collaboratorH *collaborator.Handler,
	enrollmentH *enrollment.Handler,
	bankAccountH *bankaccount.Handler,
	transactionH *transaction.Handler,
	reconciliationH *reconciliation.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/auth", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		authH.Routes(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/health-plans", planH.HealthRoutes)
		r.Route("/dental-plans", planH.DentalRoutes)
		r.Route("/plans", planH.OperatorRoutes)
		r.Route("/billing", billingH.Routes)
		r.Route("/collaborators", collaboratorH.Routes)
		r.Route("/enrollments", enrollmentH.Routes)
		r.Route("/bank-accounts", bankAccountH.Routes)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionH.Routes(r)
		})

		r.Route("/reconciliation", reconciliationH.Routes)
	})

	return router
}
