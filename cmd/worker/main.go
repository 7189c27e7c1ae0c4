package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/freightdesk/freightdesk/internal/app"
	"github.com/freightdesk/freightdesk/internal/expenses"
	"github.com/freightdesk/freightdesk/internal/invoices"
	"github.com/freightdesk/freightdesk/internal/ledger"
	"github.com/freightdesk/freightdesk/internal/platform/cache"
	"github.com/freightdesk/freightdesk/internal/platform/db"
	"github.com/freightdesk/freightdesk/internal/reports"
	"github.com/freightdesk/freightdesk/internal/shipments"
	"github.com/freightdesk/freightdesk/internal/vendorbills"
	"github.com/freightdesk/freightdesk/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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

	invoiceService := invoices.NewService(invoices.NewRepository(pool))
	shipmentService := shipments.NewService(shipments.NewRepository(pool), invoiceService, logger)
	expenseService := expenses.NewService(expenses.NewRepository(pool))
	billService := vendorbills.NewService(vendorbills.NewRepository(pool))
	ledgerService := ledger.NewService(ledger.NewRepository(pool))
	reportService := reports.NewService(invoiceService, expenseService, billService, ledgerService, shipmentService, redisClient)

	overdueJob := jobs.NewMarkOverdueJob(invoiceService, logger)
	cacheWarmJob := jobs.NewCacheWarmJob(reportService, logger)

	warmTask, err := jobs.NewCacheWarmTask(jobs.CacheWarmPayload{Currencies: cfg.ReportCurrencies})
	if err != nil {
		logger.Error("build cache warm task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskInvoiceMarkOverdue, Handler: overdueJob.Handle},
			{Type: jobs.TaskReportCacheWarm, Handler: cacheWarmJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 1 * * *", Task: jobs.NewMarkOverdueTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "*/15 * * * *", Task: warmTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
