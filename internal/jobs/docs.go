// Package jobs provides scheduled background tasks for the bookstore.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. AbandonedOrdersJob - Runs every minute to cancel orders that stayed
// unpaid past the configured payment period, restoring their book stock.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelAbandonedHandler, paymentPeriod, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The abandoned orders job logs failures and keeps running; a failed sweep
// is retried on the next tick.
package jobs
