package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/mail"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/driverrepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/adapters/out/templates"
	"laundry/internal/core/application/notifier"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	users      *userrepo.GormUserRepository
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the notifier for the configured transport. Only the
// selected transport is constructed.
func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (CompositionRoot, error) {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		users:      userrepo.NewGormUserRepository(gormDB),
		logger:     logger,
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("email templates: %w", err)
	}

	sender, err := root.createSender(ctx)
	if err != nil {
		return CompositionRoot{}, err
	}

	transport, err := notifier.ParseTransport(string(config.Email.Transport))
	if err != nil {
		return CompositionRoot{}, err
	}

	n, err := notifier.New(config.Email, notifier.Dependencies{
		Senders:       map[notifier.Transport]ports.EmailSender{transport: sender},
		Renderer:      renderer,
		Directory:     root.users,
		Drivers:       driverrepo.NewGormDriverRepository(gormDB),
		Notifications: notificationrepo.NewGormNotificationRepository(gormDB),
		Metrics:       notifier.NewMetrics(registerer),
		Logger:        logger,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("notifier: %w", err)
	}
	root.notifier = n

	return root, nil
}

func (c *CompositionRoot) createSender(ctx context.Context) (ports.EmailSender, error) {
	transport, err := notifier.ParseTransport(string(c.config.Email.Transport))
	if err != nil {
		return nil, err
	}

	switch transport {
	case notifier.TransportSMTP:
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:     c.config.SMTP.Host,
			Port:     c.config.SMTP.Port,
			Username: c.config.SMTP.Username,
			Password: c.config.SMTP.Password,
		})
	case notifier.TransportProvider:
		return mail.NewSESSenderFromRegion(ctx, c.config.SESRegion)
	default:
		return mail.NewConsoleSender(c.logger), nil
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignRequestCommandHandler() commands.AssignRequestCommandHandler {
	return commands.NewAssignRequestCommandHandler(c.lifecycleUoWFactory(), c.notifier, c.config.Policy)
}

func (c *CompositionRoot) CreateUpdateRequestStatusCommandHandler() commands.UpdateRequestStatusCommandHandler {
	return commands.NewUpdateRequestStatusCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateClearNotificationsCommandHandler() commands.ClearNotificationsCommandHandler {
	return commands.NewClearNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateAnnounceSignupCommandHandler() commands.AnnounceSignupCommandHandler {
	return commands.NewAnnounceSignupCommandHandler(c.users, c.notifier)
}

func (c *CompositionRoot) CreateSanitizeNotificationsCommandHandler() commands.SanitizeNotificationsCommandHandler {
	var f commands.SanitizeUoWFactory = FuncSanitizeUoWFactory(func() commands.SanitizeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSanitizeNotificationsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateListRequestsQueryHandler() queries.ListRequestsQueryHandler {
	return queries.NewListRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriverRequestsQueryHandler() queries.ListDriverRequestsQueryHandler {
	return queries.NewListDriverRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDriverQueryHandler() queries.GetMyDriverQueryHandler {
	return queries.NewGetMyDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateRequest:        c.CreateCreateRequestCommandHandler(),
		AssignRequest:        c.CreateAssignRequestCommandHandler(),
		UpdateRequestStatus:  c.CreateUpdateRequestStatusCommandHandler(),
		CreateDriver:         c.CreateCreateDriverCommandHandler(),
		UpdateDriverLocation: c.CreateUpdateDriverLocationCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		DeleteNotification:   c.CreateDeleteNotificationCommandHandler(),
		ClearNotifications:   c.CreateClearNotificationsCommandHandler(),
		AnnounceSignup:       c.CreateAnnounceSignupCommandHandler(),
		ListRequests:         c.CreateListRequestsQueryHandler(),
		ListDriverRequests:   c.CreateListDriverRequestsQueryHandler(),
		GetMyDriver:          c.CreateGetMyDriverQueryHandler(),
		ListDrivers:          c.CreateListDriversQueryHandler(),
		ListNotifications:    c.CreateListNotificationsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateAuthenticator() *httpin.TokenAuthenticator {
	return httpin.NewTokenAuthenticator(c.config.JWTSecret, c.users)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSanitizeNotificationsCommandHandler(), c.config.SanitizeSchedule, c.logger)
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncSanitizeUoWFactory func() commands.SanitizeUoW

func (f FuncSanitizeUoWFactory) Create() commands.SanitizeUoW {
	return f()
}
