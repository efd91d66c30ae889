package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRequestsQueryHandler reads requests newest first.
type ListRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListRequestsQueryHandler(db *gorm.DB) ListRequestsQueryHandler {
	return ListRequestsQueryHandler{db: db}
}

func (h ListRequestsQueryHandler) Handle(ctx context.Context, query ListRequestsQuery) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	db := h.db.WithContext(ctx)

	var raw *gorm.DB
	if actor.IsStaff() {
		raw = db.Raw(`SELECT` + requestColumns + `
			FROM requests
			ORDER BY created_at DESC, id`)
	} else {
		raw = db.Raw(`SELECT`+requestColumns+`
			FROM requests
			WHERE customer_id = ?
			ORDER BY created_at DESC, id`, actor.ID().Bytes())
	}

	rows, err := raw.Rows()
	if err != nil {
		return nil, err
	}

	return scanRequests(rows)
}
