package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrdersJob cancels orders that stayed unpaid past the payment
// period and returns their books to stock. Runs once a minute.
type AbandonedOrdersJob struct {
	handler       commands.CancelAbandonedOrdersCommandHandler
	paymentPeriod time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewAbandonedOrdersJob creates a new job for cancelling abandoned orders.
// Uses CancelAbandonedOrdersCommandHandler with the configured payment period.
func NewAbandonedOrdersJob(
	handler commands.CancelAbandonedOrdersCommandHandler,
	paymentPeriod time.Duration,
	logger *slog.Logger,
) *AbandonedOrdersJob {
	return &AbandonedOrdersJob{
		handler:       handler,
		paymentPeriod: paymentPeriod,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "abandoned_orders_job"),
	}
}

// Start begins the abandoned orders job to run every minute.
func (j *AbandonedOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelAbandonedOrdersCommand(j.paymentPeriod)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned orders job misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned orders job failed", "error", err)
			return
		}
		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled abandoned orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned orders job started (running every minute)")
	return nil
}

// Stop stops the abandoned orders job.
func (j *AbandonedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned orders job stopped")
}
