package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSanitizeSchedule runs the sanitizer at the top of every hour.
const DefaultSanitizeSchedule = "0 0 * * * *"

// SanitizeHandler is the use case run by the sanitizer job.
type SanitizeHandler interface {
	Handle(ctx context.Context, command commands.SanitizeNotificationsCommand) (commands.SanitizeReport, error)
}

// NotificationSanitizerJob periodically strips markup from stored notification
// bodies and attaches the request they mention.
type NotificationSanitizerJob struct {
	handler  SanitizeHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationSanitizerJob creates the job. The schedule uses the six-field
// cron syntax with seconds; empty selects DefaultSanitizeSchedule.
func NewNotificationSanitizerJob(handler SanitizeHandler, schedule string, logger *slog.Logger) *NotificationSanitizerJob {
	if schedule == "" {
		schedule = DefaultSanitizeSchedule
	}
	return &NotificationSanitizerJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_sanitizer_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *NotificationSanitizerJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification sanitizer job started", "schedule", j.schedule)
	return nil
}

// Run performs one sanitizer pass.
func (j *NotificationSanitizerJob) Run() {
	ctx := context.Background()

	report, err := j.handler.Handle(ctx, commands.NewSanitizeNotificationsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification sanitizer job failed", "error", err)
		return
	}

	if report.Sanitized > 0 || report.Attached > 0 || report.Failed > 0 {
		j.logger.InfoContext(ctx, "Notifications sanitized",
			"scanned", report.Scanned,
			"sanitized", report.Sanitized,
			"attached", report.Attached,
			"failed", report.Failed,
		)
	}
}

// Stop stops the cron runner and waits for a running pass to finish.
func (j *NotificationSanitizerJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification sanitizer job stopped")
}
