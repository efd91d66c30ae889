package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreNotification(t *testing.T, title, body string) *notification.Notification {
	t.Helper()
	n, err := notification.RestoreNotification(kernel.NewUUID(), notification.NewRecipient("a@example.com", nil),
		notification.Content{Kind: notification.KindStatusChanged, Title: title, Body: body}, false, created)
	require.NoError(t, err)
	return n
}

func TestSanitizeNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	customer := newActor(t, "a@example.com", false)
	existing := newPendingRequest(t, customer)
	missing := kernel.NewUUID()

	dirty := restoreNotification(t, "Update", "<p>Your request is <b>ready</b></p>")
	linkable := restoreNotification(t, "Update", "Request #"+existing.ID().String()+" was picked up.")
	dangling := restoreNotification(t, "Update", "Request #"+missing.String()+" was picked up.")
	clean := restoreNotification(t, "Update", "Nothing to do here.")
	broken := restoreNotification(t, "<i>Update</i>", "plain")

	notifications := new(MockNotificationRepository)
	requests := new(MockRequestRepository)
	uow := new(MockUoW)

	uow.On("NotificationRepository").Return(notifications)
	uow.On("RequestRepository").Return(requests)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	notifications.On("ListAll", ctx).
		Return([]*notification.Notification{dirty, linkable, dangling, clean, broken}, nil).Once()
	notifications.On("Update", ctx, dirty).Return(nil).Once()
	notifications.On("Update", ctx, linkable).Return(nil).Once()
	notifications.On("Update", ctx, broken).Return(errors.New("db down")).Once()

	requests.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	requests.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("request", missing.String())).Once()

	factory := new(MockSanitizeUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewSanitizeNotificationsCommandHandler(factory, slog.New(slog.NewTextHandler(io.Discard, nil)))

	report, err := handler.Handle(ctx, commands.NewSanitizeNotificationsCommand())

	require.NoError(t, err)
	assert.Equal(t, commands.SanitizeReport{Scanned: 5, Sanitized: 1, Attached: 1, Failed: 1}, report)

	assert.Equal(t, "Your request is ready", dirty.Body())
	related, ok := linkable.RelatedRequestID()
	require.True(t, ok)
	assert.Equal(t, existing.ID(), related)
	_, ok = dangling.RelatedRequestID()
	assert.False(t, ok)

	notifications.AssertNotCalled(t, "Update", ctx, dangling)
	notifications.AssertNotCalled(t, "Update", ctx, clean)
	notifications.AssertExpectations(t)
	requests.AssertExpectations(t)
}

func TestSanitizeNotificationsCommandHandler_ListFails(t *testing.T) {
	ctx := context.Background()
	notifications := new(MockNotificationRepository)
	uow := new(MockUoW)
	uow.On("NotificationRepository").Return(notifications)
	notifications.On("ListAll", ctx).Return(nil, errors.New("db down"))

	factory := new(MockSanitizeUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewSanitizeNotificationsCommandHandler(factory, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := handler.Handle(ctx, commands.NewSanitizeNotificationsCommand())

	require.Error(t, err)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}
