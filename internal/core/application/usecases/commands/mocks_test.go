package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
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

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockSanitizeUoWFactory struct{ mock.Mock }

func (m *MockSanitizeUoWFactory) Create() commands.SanitizeUoW {
	args := m.Called()
	return args.Get(0).(commands.SanitizeUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NewRequest(ctx context.Context, req *request.Request) {
	m.Called(ctx, req)
}

func (m *MockNotifier) StatusChanged(ctx context.Context, req *request.Request, old request.Status) {
	m.Called(ctx, req, old)
}

func (m *MockNotifier) DriverAssigned(ctx context.Context, req *request.Request) {
	m.Called(ctx, req)
}

func (m *MockNotifier) UserRegistered(ctx context.Context, user principal.Principal) {
	m.Called(ctx, user)
}

func (m *MockNotifier) SignupConfirmed(ctx context.Context, user principal.Principal, joined time.Time) {
	m.Called(ctx, user, joined)
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
