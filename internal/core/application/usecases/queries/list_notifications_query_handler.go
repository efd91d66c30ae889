package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/plaintext"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			n.id,
			n.email,
			n.kind,
			n.title,
			n.body,
			n.related_request_id,
			n.metadata,
			n.is_read,
			n.created_at,
			r.customer_name,
			r.status
		FROM notifications n
		LEFT JOIN requests r ON r.id = n.related_request_id
		WHERE n.principal_id = @principal
			OR (@email <> '' AND lower(n.email) = lower(@email))
		ORDER BY n.created_at DESC, n.id
	`, sql.Named("principal", actor.ID().Bytes()), sql.Named("email", actor.Email())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var view NotificationView
		var id uuid.UUID
		var requestID uuid.NullUUID
		var kind string
		var metadata datatypes.JSONType[map[string]string]
		var customerName, status sql.NullString

		err = rows.Scan(
			&id,
			&view.Email,
			&kind,
			&view.Title,
			&view.Body,
			&requestID,
			&metadata,
			&view.IsRead,
			&view.CreatedAt,
			&customerName,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.RelatedRequestID, err = nullableUUID(requestID); err != nil {
			return nil, err
		}

		view.Kind = notification.Kind(kind)
		view.Metadata = metadata.Data()
		view.CreatedAt = view.CreatedAt.UTC()
		view.Summary = summarize(view, customerName, status)
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func summarize(view NotificationView, customerName, status sql.NullString) string {
	if view.RelatedRequestID != nil && customerName.Valid {
		return fmt.Sprintf("Request #%s - %s - %s", view.RelatedRequestID.String(), customerName.String, status.String)
	}
	if body := strings.TrimSpace(plaintext.Strip(view.Body)); body != "" {
		return plaintext.Truncate(body, SummaryLimit)
	}
	return view.Title
}
