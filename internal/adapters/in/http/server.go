package http

import (
	"log/slog"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateRequest        commands.CreateRequestCommandHandler
	AssignRequest        commands.AssignRequestCommandHandler
	UpdateRequestStatus  commands.UpdateRequestStatusCommandHandler
	CreateDriver         commands.CreateDriverCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler
	DeleteNotification   commands.DeleteNotificationCommandHandler
	ClearNotifications   commands.ClearNotificationsCommandHandler
	AnnounceSignup       commands.AnnounceSignupCommandHandler

	// Query handlers
	ListRequests       queries.ListRequestsQueryHandler
	ListDriverRequests queries.ListDriverRequestsQueryHandler
	GetMyDriver        queries.GetMyDriverQueryHandler
	ListDrivers        queries.ListDriversQueryHandler
	ListNotifications  queries.ListNotificationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the API under /api behind auth.
func (s *Server) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	if e.Validator == nil {
		e.Validator = NewValidator()
	}

	api := e.Group("/api", auth)

	api.GET("/requests", s.ListRequests)
	api.POST("/requests", s.CreateRequest)
	api.POST("/requests/:id/assign", s.AssignRequest)
	api.POST("/requests/:id/update_status", s.UpdateRequestStatus)

	api.GET("/drivers", s.ListDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/me", s.GetMyDriver)
	api.GET("/drivers/my_requests", s.ListDriverRequests)
	api.POST("/drivers/update_location", s.UpdateDriverLocation)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/:id/mark_read", s.MarkNotificationRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)
	api.POST("/notifications/clear_all", s.ClearNotifications)

	api.POST("/users/announce_signup", s.AnnounceSignup)
}

// ListRequests handles GET /api/requests.
func (s *Server) ListRequests(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListRequestsQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.ListRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, requestsFromViews(views))
}

// CreateRequest handles POST /api/requests.
func (s *Server) CreateRequest(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body CreateRequestBody
	if err = bindAndValidate(c, &body); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateRequestCommand(actor, request.Details{
		CustomerName:     body.CustomerName,
		Phone:            body.Phone,
		Address:          body.Address,
		ItemsDescription: body.ItemsDescription,
		ServiceType:      body.ServiceType,
		PickupTime:       body.PickupTime,
	})
	if err != nil {
		return s.fail(c, err)
	}

	req, err := s.handlers.CreateRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, requestFromDomain(req))
}

// AssignRequest handles POST /api/requests/:id/assign.
func (s *Server) AssignRequest(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}
	requestID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body AssignRequestBody
	if err = bindAndValidate(c, &body); err != nil {
		return s.fail(c, err)
	}
	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignRequestCommand(actor, requestID, driverID)
	if err != nil {
		return s.fail(c, err)
	}

	req, err := s.handlers.AssignRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, requestFromDomain(req))
}

// UpdateRequestStatus handles POST /api/requests/:id/update_status.
func (s *Server) UpdateRequestStatus(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}
	requestID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body UpdateStatusBody
	if err = bindAndValidate(c, &body); err != nil {
		return s.fail(c, err)
	}
	status, err := request.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateRequestStatusCommand(actor, requestID, status)
	if err != nil {
		return s.fail(c, err)
	}

	req, err := s.handlers.UpdateRequestStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, requestFromDomain(req))
}

// ListDrivers handles GET /api/drivers.
func (s *Server) ListDrivers(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListDriversQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.ListDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Driver, len(views))
	for i, v := range views {
		if response[i], err = driverFromView(v); err != nil {
			return s.fail(c, err)
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body CreateDriverBody
	if err = bindAndValidate(c, &body); err != nil {
		return s.fail(c, err)
	}

	var linkTo *kernel.UUID
	if body.UserID != nil {
		id, err := kernel.UUIDFromString(*body.UserID)
		if err != nil {
			return s.fail(c, err)
		}
		linkTo = &id
	}

	cmd, err := commands.NewCreateDriverCommand(actor, body.Name, body.Phone, linkTo)
	if err != nil {
		return s.fail(c, err)
	}

	d, err := s.handlers.CreateDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	response, err := driverFromDomain(d)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, response)
}

// GetMyDriver handles GET /api/drivers/me.
func (s *Server) GetMyDriver(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetMyDriverQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.GetMyDriver.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	response, err := driverFromView(view)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ListDriverRequests handles GET /api/drivers/my_requests.
func (s *Server) ListDriverRequests(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListDriverRequestsQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.ListDriverRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, requestsFromViews(views))
}

// UpdateDriverLocation handles POST /api/drivers/update_location.
func (s *Server) UpdateDriverLocation(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body UpdateLocationBody
	if err = bindAndValidate(c, &body); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(actor, body.Latitude, body.Longitude, body.IsAvailable)
	if err != nil {
		return s.fail(c, err)
	}

	d, err := s.handlers.UpdateDriverLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	response, err := driverFromDomain(d)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ListNotifications handles GET /api/notifications.
func (s *Server) ListNotifications(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListNotificationsQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Notification, len(views))
	for i, v := range views {
		response[i] = notificationFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/notifications/:id/mark_read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(actor, id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "marked as read"})
}

// DeleteNotification handles DELETE /api/notifications/:id.
func (s *Server) DeleteNotification(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(actor, id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteNotification.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearNotifications handles POST /api/notifications/clear_all.
func (s *Server) ClearNotifications(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	deleted, err := s.handlers.ClearNotifications.Handle(c.Request().Context(), actor)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

// AnnounceSignup handles POST /api/users/announce_signup. The auth service calls
// it after a successful signup.
func (s *Server) AnnounceSignup(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body AnnounceSignupBody
	if err = bindAndValidate(c, &body); err != nil {
		return s.fail(c, err)
	}

	var joined time.Time
	if body.Joined != nil {
		joined = *body.Joined
	}
	cmd, err := commands.NewAnnounceSignupCommand(actor, body.Email, joined)
	if err != nil {
		return s.fail(c, err)
	}

	if _, err = s.handlers.AnnounceSignup.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (s *Server) actor(c echo.Context) (principal.Principal, error) {
	p, ok := currentPrincipal(c)
	if !ok {
		return principal.Principal{}, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return p, nil
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}
