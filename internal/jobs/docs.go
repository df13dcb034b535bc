// Package jobs provides scheduled background tasks for the subscription system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the subscription service.
//
// # Available Jobs
//
// 1. SubscriptionExpiryJob - Runs hourly to expire active subscriptions whose end date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireSubscriptionsHandler, logger)
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
// The expiry job uses the cron expression "0 0 * * * *" which fires at the top
// of every hour. Paused subscriptions never expire, so the sweep only touches
// active subscriptions whose end date has already passed.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - An empty sweep is not an error and is not logged
// - Failed job starts will stop any already running jobs
package jobs
