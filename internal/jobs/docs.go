// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance.
//
// # Available Jobs
//
// 1. NotificationSanitizerJob - strips markup left in stored notification bodies
// and links notifications that mention "Request #<id>" to that request
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sanitizeHandler, "0 0 * * * *", logger)
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
// Schedules use the six-field cron syntax with seconds. The sanitizer runs
// hourly unless SANITIZE_SCHEDULE overrides it.
//
// # Error Handling
//
// - A failed pass is logged and retried at the next tick
// - Rows that fail individually are counted in the report, not raised
package jobs
