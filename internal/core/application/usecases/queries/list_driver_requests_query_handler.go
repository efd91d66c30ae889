package queries

import (
	"context"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListDriverRequestsQueryHandler resolves the actor's driver profile and reads
// its requests newest first.
type ListDriverRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListDriverRequestsQueryHandler(db *gorm.DB) ListDriverRequestsQueryHandler {
	return ListDriverRequestsQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when the actor has no driver profile.
func (h ListDriverRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListDriverRequestsQuery,
) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actorID := query.Actor().ID()
	db := h.db.WithContext(ctx)

	var profiles int64
	if err := db.Table("drivers").Where("principal_id = ?", actorID.Bytes()).Count(&profiles).Error; err != nil {
		return nil, err
	}
	if profiles == 0 {
		return nil, errs.NewObjectNotFoundError("driver for principal", actorID.String())
	}

	rows, err := db.Raw(`SELECT`+requestColumns+`
		FROM requests
		WHERE driver_id = (SELECT id FROM drivers WHERE principal_id = ?)
		ORDER BY created_at DESC, id`, actorID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanRequests(rows)
}
