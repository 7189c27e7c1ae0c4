package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/freightdesk/freightdesk/internal/auth"
	"github.com/freightdesk/freightdesk/internal/customers"
	"github.com/freightdesk/freightdesk/internal/expenses"
	"github.com/freightdesk/freightdesk/internal/invoices"
	"github.com/freightdesk/freightdesk/internal/ledger"
	"github.com/freightdesk/freightdesk/internal/reports"
	"github.com/freightdesk/freightdesk/internal/shared"
	"github.com/freightdesk/freightdesk/internal/shipments"
	"github.com/freightdesk/freightdesk/internal/vendorbills"
	"github.com/freightdesk/freightdesk/internal/vendors"
	"github.com/freightdesk/freightdesk/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger             *slog.Logger
	Config             *Config
	SessionManager     *shared.SessionManager
	AuthHandler        *auth.Handler
	CustomerHandler    *customers.Handler
	VendorHandler      *vendors.Handler
	ShipmentHandler    *shipments.Handler
	InvoiceHandler     *invoices.Handler
	ExpenseHandler     *expenses.Handler
	VendorBillHandler  *vendorbills.Handler
	LedgerHandler      *ledger.Handler
	ReportHandler      *reports.Handler
	JobHandler         *jobs.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(params.SessionManager, params.Logger))

		r.Route("/customers", params.CustomerHandler.MountRoutes)
		r.Route("/vendors", params.VendorHandler.MountRoutes)
		r.Route("/shipments", params.ShipmentHandler.MountRoutes)
		r.Route("/invoices", params.InvoiceHandler.MountRoutes)
		r.Route("/expenses", params.ExpenseHandler.MountRoutes)
		r.Route("/vendor-bills", params.VendorBillHandler.MountRoutes)
		r.Route("/ledger", params.LedgerHandler.MountRoutes)
		r.Route("/reports", params.ReportHandler.MountRoutes)
		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
	})

	return r
}
