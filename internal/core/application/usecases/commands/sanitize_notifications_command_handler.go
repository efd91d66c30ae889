package commands

import (
	"context"
	"errors"
	"log/slog"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"
)

// SanitizeNotificationsCommandHandler rewrites notifications one row at a time.
// A row that fails to save is logged and counted; the run goes on.
type SanitizeNotificationsCommandHandler struct {
	uowFactory SanitizeUoWFactory
	logger     *slog.Logger
}

func NewSanitizeNotificationsCommandHandler(
	uowFactory SanitizeUoWFactory,
	logger *slog.Logger,
) SanitizeNotificationsCommandHandler {
	return SanitizeNotificationsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "sanitize_notifications"),
	}
}

func (h SanitizeNotificationsCommandHandler) Handle(
	ctx context.Context,
	command SanitizeNotificationsCommand,
) (SanitizeReport, error) {
	var report SanitizeReport
	if err := command.Validate(); err != nil {
		return report, err
	}

	list, err := h.uowFactory.Create().NotificationRepository().ListAll(ctx)
	if err != nil {
		return report, err
	}
	report.Scanned = len(list)

	for _, n := range list {
		sanitized, attached, saveErr := h.sanitize(ctx, n)
		if saveErr != nil {
			h.logger.Error("failed to sanitize notification", "notification_id", n.ID().String(), "error", saveErr)
			report.Failed++
			continue
		}
		if sanitized {
			report.Sanitized++
		}
		if attached {
			report.Attached++
		}
	}

	h.logger.Info("notifications sanitized",
		"scanned", report.Scanned, "sanitized", report.Sanitized,
		"attached", report.Attached, "failed", report.Failed)
	return report, nil
}

func (h SanitizeNotificationsCommandHandler) sanitize(
	ctx context.Context,
	n *notification.Notification,
) (bool, bool, error) {
	sanitized := n.SanitizeBody()

	referenced, hasReference := n.ReferencedRequestID()
	_, hasRelated := n.RelatedRequestID()
	wantsAttach := hasReference && !hasRelated

	if !sanitized && !wantsAttach {
		return false, false, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	attached := false
	if wantsAttach {
		req, err := uow.RequestRepository().Get(ctx, referenced)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return false, false, err
		default:
			if attached, err = n.AttachRequest(req.ID()); err != nil {
				return false, false, err
			}
		}
	}

	if !sanitized && !attached {
		return false, false, nil
	}

	if err := uow.NotificationRepository().Update(ctx, n); err != nil {
		return false, false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, false, err
	}

	return sanitized, attached, nil
}
