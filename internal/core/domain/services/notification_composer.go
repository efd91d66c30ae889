package services

import (
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
)

// Email template identifiers. Each maps 1:1 to a renderer template.
const (
	TemplateCustomerNewRequest     = "customer_new_request"
	TemplateAdminNewRequest        = "admin_new_request"
	TemplateRequestStatusUpdate    = "request_status_update"
	TemplateDriverAssignment       = "driver_assignment"
	TemplateCustomerDriverAssigned = "customer_driver_assigned"
	TemplateAdminNewUser           = "admin_new_user_notification"
	TemplateSignupConfirmation     = "customer_signup_confirmation"
)

// Message is one email, sent once to all its recipients, and the in-app
// notification stored for each of them.
type Message struct {
	Kind           notification.Kind
	Template       string
	Subject        string
	Data           map[string]any
	Title          string
	Body           string
	RelatedRequest *kernel.UUID
	Metadata       map[string]string
	Recipients     []notification.Recipient
}

// Content returns the in-app part of the message.
func (m Message) Content() notification.Content {
	return notification.Content{
		Kind:             m.Kind,
		Title:            m.Title,
		Body:             m.Body,
		RelatedRequestID: m.RelatedRequest,
		Metadata:         m.Metadata,
	}
}

// Emails returns the recipient addresses in order.
func (m Message) Emails() []string {
	emails := make([]string, 0, len(m.Recipients))
	for _, r := range m.Recipients {
		emails = append(emails, r.Email)
	}
	return emails
}

// Audience is the set of already resolved parties of an event.
// A nil Customer or Driver means the party has no reachable email.
type Audience struct {
	Customer   *notification.Recipient
	Driver     *notification.Recipient
	DriverName string
	Staff      []notification.Recipient
}

// NotificationComposer turns lifecycle events into messages.
//
// Rules:
//   - recipients without an email are skipped silently
//   - a recipient appears at most once per message (emails compared case-insensitively)
//   - a message without recipients is not produced
//   - in-app bodies never reuse the HTML email; they are short plain-text synopses
type NotificationComposer struct{}

func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// NewRequest produces the customer acknowledgement and the staff notice.
func (c NotificationComposer) NewRequest(req *request.Request, audience Audience) []Message {
	details := req.Details()
	data := requestData(req)
	meta := requestMeta(req)

	var out []Message
	out = appendMessage(out, Message{
		Kind:     notification.KindNewRequest,
		Template: TemplateCustomerNewRequest,
		Subject:  "Your Laundry Request Has Been Received",
		Data:     data,
		Title:    "Your Laundry Request Has Been Received",
		Body: fmt.Sprintf("%s for %s has been received. Pickup address: %s.",
			requestRef(req), details.CustomerName, details.Address),
		RelatedRequest: idPtr(req.ID()),
		Metadata:       meta,
	}, optional(audience.Customer))

	out = appendMessage(out, Message{
		Kind:     notification.KindNewRequest,
		Template: TemplateAdminNewRequest,
		Subject:  "New Laundry Request Received",
		Data:     data,
		Title:    "New Laundry Request Received",
		Body: fmt.Sprintf("%s - %s - %s. Pickup address: %s.",
			requestRef(req), details.CustomerName, req.Status(), details.Address),
		RelatedRequest: idPtr(req.ID()),
		Metadata:       meta,
	}, audience.Staff)

	return out
}

// StatusChanged produces one message for the customer and the assigned driver.
func (c NotificationComposer) StatusChanged(req *request.Request, old request.Status, audience Audience) []Message {
	details := req.Details()
	data := requestData(req)
	data["OldStatus"] = old.Label()
	data["NewStatus"] = req.Status().Label()

	meta := requestMeta(req)
	meta["old_status"] = old.String()
	meta["new_status"] = req.Status().String()

	subject := "Laundry Request Status Updated: " + req.Status().String()

	return appendMessage(nil, Message{
		Kind:     notification.KindStatusChanged,
		Template: TemplateRequestStatusUpdate,
		Subject:  subject,
		Data:     data,
		Title:    subject,
		Body: fmt.Sprintf("%s for %s moved from %s to %s.",
			requestRef(req), details.CustomerName, old.Label(), req.Status().Label()),
		RelatedRequest: idPtr(req.ID()),
		Metadata:       meta,
	}, optional(audience.Customer), optional(audience.Driver))
}

// DriverAssigned produces the driver assignment and the customer notice.
// The customer is told even when the driver cannot be reached.
func (c NotificationComposer) DriverAssigned(req *request.Request, audience Audience) []Message {
	details := req.Details()
	data := requestData(req)
	data["DriverName"] = audience.DriverName

	meta := requestMeta(req)
	if driverID := req.Driver(); driverID != nil {
		meta["driver_id"] = driverID.String()
	}

	var out []Message
	out = appendMessage(out, Message{
		Kind:     notification.KindDriverAssigned,
		Template: TemplateDriverAssignment,
		Subject:  "New Laundry Pickup Assignment",
		Data:     data,
		Title:    "New Laundry Pickup Assignment",
		Body: fmt.Sprintf("%s for %s has been assigned to you. Pickup address: %s.",
			requestRef(req), details.CustomerName, details.Address),
		RelatedRequest: idPtr(req.ID()),
		Metadata:       meta,
	}, optional(audience.Driver))

	driverName := audience.DriverName
	if driverName == "" {
		driverName = "A driver"
	}
	out = appendMessage(out, Message{
		Kind:           notification.KindDriverAssigned,
		Template:       TemplateCustomerDriverAssigned,
		Subject:        "Driver Assigned to Your Laundry Request",
		Data:           data,
		Title:          "Driver Assigned to Your Laundry Request",
		Body:           fmt.Sprintf("%s has been assigned to %s.", driverName, requestRef(req)),
		RelatedRequest: idPtr(req.ID()),
		Metadata:       meta,
	}, optional(audience.Customer))

	return out
}

// UserRegistered tells staff about a new account.
func (c NotificationComposer) UserRegistered(user principal.Principal, audience Audience) []Message {
	return appendMessage(nil, Message{
		Kind:     notification.KindUserRegistered,
		Template: TemplateAdminNewUser,
		Subject:  "New User Registration",
		Data:     userData(user, time.Time{}),
		Title:    "New User Registration",
		Body:     fmt.Sprintf("New user registered: %s (%s).", user.DisplayName(), user.Email()),
		Metadata: map[string]string{"user_id": user.ID().String()},
	}, audience.Staff)
}

// SignupConfirmed welcomes the new user. Nothing is produced for a user without an email.
func (c NotificationComposer) SignupConfirmed(user principal.Principal, joined time.Time) []Message {
	recipients := []notification.Recipient{}
	if user.HasEmail() {
		recipients = append(recipients, notification.RecipientOf(user))
	}
	return appendMessage(nil, Message{
		Kind:     notification.KindSignupConfirmed,
		Template: TemplateSignupConfirmation,
		Subject:  "Welcome to Sophistican Laundry Logistics!",
		Data:     userData(user, joined),
		Title:    "Welcome to Sophistican Laundry Logistics!",
		Body:     fmt.Sprintf("Welcome, %s! Your account is ready.", user.DisplayName()),
		Metadata: map[string]string{"user_id": user.ID().String()},
	}, recipients)
}

func appendMessage(out []Message, msg Message, groups ...[]notification.Recipient) []Message {
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, r := range group {
			email := strings.TrimSpace(r.Email)
			if email == "" {
				continue
			}
			key := strings.ToLower(email)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			msg.Recipients = append(msg.Recipients, notification.NewRecipient(email, r.PrincipalID))
		}
	}
	if len(msg.Recipients) == 0 {
		return out
	}
	return append(out, msg)
}

func optional(r *notification.Recipient) []notification.Recipient {
	if r == nil {
		return nil
	}
	return []notification.Recipient{*r}
}

func requestRef(req *request.Request) string {
	return "Request #" + req.ID().String()
}

func idPtr(id kernel.UUID) *kernel.UUID {
	return &id
}

func requestData(req *request.Request) map[string]any {
	details := req.Details()
	data := map[string]any{
		"RequestID":    req.ID().String(),
		"CustomerName": details.CustomerName,
		"Phone":        details.Phone,
		"Address":      details.Address,
		"Items":        details.ItemsDescription,
		"ServiceType":  details.ServiceType,
		"Status":       req.Status().Label(),
		"PickupTime":   "",
	}
	if details.PickupTime != nil {
		data["PickupTime"] = details.PickupTime.Format("2006-01-02 15:04 MST")
	}
	return data
}

func requestMeta(req *request.Request) map[string]string {
	return map[string]string{
		"request_id": req.ID().String(),
		"status":     req.Status().String(),
	}
}

func userData(user principal.Principal, joined time.Time) map[string]any {
	data := map[string]any{
		"Name":       user.DisplayName(),
		"Email":      user.Email(),
		"DateJoined": "",
	}
	if !joined.IsZero() {
		data["DateJoined"] = joined.UTC().Format("January 2, 2006")
	}
	return data
}
