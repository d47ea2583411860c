// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel orders left unpaid past the payment window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireStaleOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Staleness itself is decided by the sweep handler, so the
// schedule only bounds how quickly an expired order is picked up.
//
// # Error Handling
//
// - A failed sweep is logged and the schedule keeps running
// - Failed job starts are reported to the caller
package jobs
