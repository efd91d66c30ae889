package queries

import (
	"context"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMyDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetMyDriverQueryHandler(db *gorm.DB) GetMyDriverQueryHandler {
	return GetMyDriverQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when the actor has no driver profile.
func (h GetMyDriverQueryHandler) Handle(ctx context.Context, query GetMyDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}

	actorID := query.Actor().ID()

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+driverColumns+`
		FROM drivers
		WHERE principal_id = ?`, actorID.Bytes()).Rows()
	if err != nil {
		return DriverView{}, err
	}

	views, err := scanDrivers(rows)
	if err != nil {
		return DriverView{}, err
	}
	if len(views) == 0 {
		return DriverView{}, errs.NewObjectNotFoundError("driver for principal", actorID.String())
	}

	return views[0], nil
}

// ListDriversQueryHandler reads driver profiles ordered by name.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	db := h.db.WithContext(ctx)

	var raw *gorm.DB
	if actor.IsStaff() {
		raw = db.Raw(`SELECT` + driverColumns + `
			FROM drivers
			ORDER BY name, id`)
	} else {
		raw = db.Raw(`SELECT`+driverColumns+`
			FROM drivers
			WHERE principal_id = ?
			ORDER BY name, id`, actor.ID().Bytes())
	}

	rows, err := raw.Rows()
	if err != nil {
		return nil, err
	}

	return scanDrivers(rows)
}
