package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"bookstore/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	abandonedOrdersJob *AbandonedOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelAbandonedHandler commands.CancelAbandonedOrdersCommandHandler,
	paymentPeriod time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		abandonedOrdersJob: NewAbandonedOrdersJob(cancelAbandonedHandler, paymentPeriod, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.abandonedOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start abandoned orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.abandonedOrdersJob.Stop()
}
