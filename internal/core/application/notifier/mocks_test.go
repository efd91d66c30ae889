package notifier_test

import (
	"context"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) Send(ctx context.Context, email ports.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockTemplateRenderer struct{ mock.Mock }

func (m *MockTemplateRenderer) Render(templateID string, data map[string]any) (string, error) {
	args := m.Called(templateID, data)
	return args.String(0), args.Error(1)
}

type MockPrincipalDirectory struct{ mock.Mock }

func (m *MockPrincipalDirectory) Get(ctx context.Context, id kernel.UUID) (principal.Principal, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(principal.Principal), args.Bool(1), args.Error(2)
}

func (m *MockPrincipalDirectory) FindByEmail(ctx context.Context, email string) (principal.Principal, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(principal.Principal), args.Bool(1), args.Error(2)
}

func (m *MockPrincipalDirectory) ListStaff(ctx context.Context) ([]principal.Principal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]principal.Principal), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByPrincipal(ctx context.Context, principalID kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsForPrincipal(ctx context.Context, principalID kernel.UUID) (bool, error) {
	args := m.Called(ctx, principalID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteForRecipient(
	ctx context.Context,
	principalID kernel.UUID,
	email string,
) (int64, error) {
	args := m.Called(ctx, principalID, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) ListAll(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}
