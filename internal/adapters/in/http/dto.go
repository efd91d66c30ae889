package http

import (
	"encoding/json"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"

	"github.com/twpayne/go-geom/encoding/geojson"
)

type CreateRequestBody struct {
	CustomerName     string     `json:"customer_name" validate:"required,max=255"`
	Phone            string     `json:"phone" validate:"max=32"`
	Address          string     `json:"address" validate:"required,max=1024"`
	ItemsDescription string     `json:"items_description" validate:"max=4096"`
	ServiceType      string     `json:"service_type" validate:"max=64"`
	PickupTime       *time.Time `json:"pickup_time"`
}

type AssignRequestBody struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

type UpdateStatusBody struct {
	Status string `json:"status" validate:"required,oneof=pending assigned picked_up in_progress completed cancelled"`
}

type CreateDriverBody struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone" validate:"max=32"`
	// UserID links the profile to another principal; honoured for staff only.
	UserID *string `json:"user_id" validate:"omitempty,uuid"`
}

type UpdateLocationBody struct {
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	IsAvailable *bool    `json:"is_available"`
}

type AnnounceSignupBody struct {
	Email  string     `json:"email" validate:"required,email"`
	Joined *time.Time `json:"joined"`
}

type Request struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customer_id"`
	DriverID         *string    `json:"driver_id"`
	Status           string     `json:"status"`
	StatusLabel      string     `json:"status_label"`
	CustomerName     string     `json:"customer_name"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	ItemsDescription string     `json:"items_description"`
	ServiceType      string     `json:"service_type"`
	PickupTime       *time.Time `json:"pickup_time"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Driver struct {
	ID                 string          `json:"id"`
	UserID             *string         `json:"user_id"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Location           json.RawMessage `json:"location"`
	IsAvailable        bool            `json:"is_available"`
	LastLocationUpdate time.Time       `json:"last_location_update"`
}

type Notification struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	Kind             string            `json:"kind"`
	Title            string            `json:"title"`
	Body             string            `json:"body"`
	Summary          string            `json:"summary"`
	RelatedRequestID *string           `json:"related_request"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	IsRead           bool              `json:"is_read"`
	CreatedAt        time.Time         `json:"created_at"`
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// locationJSON encodes a location as a GeoJSON point, or null.
func locationJSON(loc *kernel.Location) (json.RawMessage, error) {
	if loc == nil {
		return json.RawMessage("null"), nil
	}
	g, err := geojson.Encode(loc.Point())
	if err != nil {
		return nil, err
	}
	return json.Marshal(g)
}

func requestFromDomain(r *request.Request) Request {
	d := r.Details()
	return Request{
		ID:               r.ID().String(),
		CustomerID:       r.CustomerID().String(),
		DriverID:         idString(r.Driver()),
		Status:           r.Status().String(),
		StatusLabel:      r.Status().Label(),
		CustomerName:     d.CustomerName,
		Phone:            d.Phone,
		Address:          d.Address,
		ItemsDescription: d.ItemsDescription,
		ServiceType:      d.ServiceType,
		PickupTime:       d.PickupTime,
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func requestFromView(v queries.RequestView) Request {
	return Request{
		ID:               v.ID.String(),
		CustomerID:       v.CustomerID.String(),
		DriverID:         idString(v.DriverID),
		Status:           v.Status.String(),
		StatusLabel:      v.Status.Label(),
		CustomerName:     v.CustomerName,
		Phone:            v.Phone,
		Address:          v.Address,
		ItemsDescription: v.ItemsDescription,
		ServiceType:      v.ServiceType,
		PickupTime:       v.PickupTime,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func requestsFromViews(views []queries.RequestView) []Request {
	out := make([]Request, len(views))
	for i, v := range views {
		out[i] = requestFromView(v)
	}
	return out
}

func driverFromDomain(d *driver.Driver) (Driver, error) {
	var userID *string
	if id, ok := d.PrincipalID(); ok {
		userID = idString(&id)
	}
	var loc *kernel.Location
	if l, ok := d.Location(); ok {
		loc = &l
	}
	location, err := locationJSON(loc)
	if err != nil {
		return Driver{}, err
	}
	return Driver{
		ID:                 d.ID().String(),
		UserID:             userID,
		Name:               d.Name(),
		Phone:              d.Phone(),
		Location:           location,
		IsAvailable:        d.IsAvailable(),
		LastLocationUpdate: d.LastLocationUpdate(),
	}, nil
}

func driverFromView(v queries.DriverView) (Driver, error) {
	location, err := locationJSON(v.Location)
	if err != nil {
		return Driver{}, err
	}
	return Driver{
		ID:                 v.ID.String(),
		UserID:             idString(v.PrincipalID),
		Name:               v.Name,
		Phone:              v.Phone,
		Location:           location,
		IsAvailable:        v.IsAvailable,
		LastLocationUpdate: v.LastLocationUpdate,
	}, nil
}

func notificationFromView(v queries.NotificationView) Notification {
	return Notification{
		ID:               v.ID.String(),
		Email:            v.Email,
		Kind:             v.Kind.String(),
		Title:            v.Title,
		Body:             v.Body,
		Summary:          v.Summary,
		RelatedRequestID: idString(v.RelatedRequestID),
		Metadata:         v.Metadata,
		IsRead:           v.IsRead,
		CreatedAt:        v.CreatedAt,
	}
}
