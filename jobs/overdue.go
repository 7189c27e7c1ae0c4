package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/freightdesk/freightdesk/internal/invoices"
)

// MarkOverdueJob sweeps sent and partially paid invoices whose due date has
// passed and flips them to overdue.
type MarkOverdueJob struct {
	Invoices *invoices.Service
	Logger   *slog.Logger
}

// NewMarkOverdueJob wires dependencies for the overdue sweep.
func NewMarkOverdueJob(invoiceSvc *invoices.Service, logger *slog.Logger) *MarkOverdueJob {
	return &MarkOverdueJob{Invoices: invoiceSvc, Logger: logger}
}

// Handle processes TaskInvoiceMarkOverdue tasks.
func (j *MarkOverdueJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.Invoices == nil {
		return errors.New("mark overdue: handler not configured")
	}
	flipped, err := j.Invoices.MarkOverdue(ctx)
	if err != nil {
		j.logger().Error("overdue sweep failed", slog.Any("error", err))
		return err
	}
	j.logger().Info("overdue sweep complete", slog.Int64("flipped", flipped))
	return nil
}

func (j *MarkOverdueJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskInvoiceMarkOverdue))
	}
	return slog.Default().With(slog.String("job", TaskInvoiceMarkOverdue))
}
