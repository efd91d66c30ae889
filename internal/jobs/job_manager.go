package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationSanitizerJob *NotificationSanitizerJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sanitizeHandler SanitizeHandler,
	sanitizeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationSanitizerJob: NewNotificationSanitizerJob(sanitizeHandler, sanitizeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationSanitizerJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification sanitizer job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationSanitizerJob.Stop()
}
