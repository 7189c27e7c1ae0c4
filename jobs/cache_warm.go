package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/freightdesk/freightdesk/internal/reports"
)

// CacheWarmJob rebuilds the balance-sheet cache for a set of display
// currencies so the first dashboard hit after expiry stays fast.
type CacheWarmJob struct {
	Reports *reports.Service
	Logger  *slog.Logger
}

// NewCacheWarmJob wires dependencies for the cache warm handler.
func NewCacheWarmJob(reportSvc *reports.Service, logger *slog.Logger) *CacheWarmJob {
	return &CacheWarmJob{Reports: reportSvc, Logger: logger}
}

// Handle processes TaskReportCacheWarm tasks.
func (j *CacheWarmJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil {
		return errors.New("cache warm: handler not configured")
	}
	var payload CacheWarmPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if len(payload.Currencies) == 0 {
		payload.Currencies = []string{"USD"}
	}

	logger := j.logger()
	for _, currency := range payload.Currencies {
		if err := j.Reports.WarmBalanceSheet(ctx, currency); err != nil {
			logger.Error("warm balance sheet", slog.String("currency", currency), slog.Any("error", err))
			return err
		}
	}
	logger.Info("balance sheet cache warmed", slog.Int("currencies", len(payload.Currencies)))
	return nil
}

func (j *CacheWarmJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskReportCacheWarm))
	}
	return slog.Default().With(slog.String("job", TaskReportCacheWarm))
}
