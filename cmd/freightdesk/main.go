package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/freightdesk/freightdesk/internal/app"
	"github.com/freightdesk/freightdesk/internal/auth"
	"github.com/freightdesk/freightdesk/internal/customers"
	"github.com/freightdesk/freightdesk/internal/expenses"
	"github.com/freightdesk/freightdesk/internal/invoices"
	"github.com/freightdesk/freightdesk/internal/ledger"
	"github.com/freightdesk/freightdesk/internal/platform/cache"
	"github.com/freightdesk/freightdesk/internal/platform/db"
	"github.com/freightdesk/freightdesk/internal/reports"
	"github.com/freightdesk/freightdesk/internal/shared"
	"github.com/freightdesk/freightdesk/internal/shipments"
	"github.com/freightdesk/freightdesk/internal/vendorbills"
	"github.com/freightdesk/freightdesk/internal/vendors"
	"github.com/freightdesk/freightdesk/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "freightdesk_session", cfg.SessionTTL, cfg.IsProduction())

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	customerService := customers.NewService(customers.NewRepository(pool))
	customerHandler := customers.NewHandler(logger, customerService)

	vendorService := vendors.NewService(vendors.NewRepository(pool))
	vendorHandler := vendors.NewHandler(logger, vendorService)

	invoiceService := invoices.NewService(invoices.NewRepository(pool))
	invoiceHandler := invoices.NewHandler(logger, invoiceService)

	shipmentService := shipments.NewService(shipments.NewRepository(pool), invoiceService, logger)
	shipmentHandler := shipments.NewHandler(logger, shipmentService)

	expenseService := expenses.NewService(expenses.NewRepository(pool))
	expenseHandler := expenses.NewHandler(logger, expenseService)

	billService := vendorbills.NewService(vendorbills.NewRepository(pool))
	billHandler := vendorbills.NewHandler(logger, billService)

	ledgerService := ledger.NewService(ledger.NewRepository(pool))
	ledgerHandler := ledger.NewHandler(logger, ledgerService)

	reportService := reports.NewService(invoiceService, expenseService, billService, ledgerService, shipmentService, redisClient)
	reportHandler := reports.NewHandler(logger, reportService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		AuthHandler:       authHandler,
		CustomerHandler:   customerHandler,
		VendorHandler:     vendorHandler,
		ShipmentHandler:   shipmentHandler,
		InvoiceHandler:    invoiceHandler,
		ExpenseHandler:    expenseHandler,
		VendorBillHandler: billHandler,
		LedgerHandler:     ledgerHandler,
		ReportHandler:     reportHandler,
		JobHandler:        jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
