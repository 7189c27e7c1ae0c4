package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskInvoiceMarkOverdue flips past-due invoices to overdue.
	TaskInvoiceMarkOverdue = "invoice:mark_overdue"
	// TaskReportCacheWarm rebuilds the balance-sheet cache.
	TaskReportCacheWarm = "report:cache_warm"
)

// CacheWarmPayload names the display currencies to pre-build.
type CacheWarmPayload struct {
	Currencies []string `json:"currencies"`
}

// NewMarkOverdueTask constructs the overdue-sweep task. It carries no
// payload.
func NewMarkOverdueTask() *asynq.Task {
	return asynq.NewTask(TaskInvoiceMarkOverdue, nil)
}

// NewCacheWarmTask constructs a cache-warm task.
func NewCacheWarmTask(payload CacheWarmPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportCacheWarm, data), nil
}
