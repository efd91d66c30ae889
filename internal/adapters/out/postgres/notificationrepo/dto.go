// Package notificationrepo persists in-app notifications.
package notificationrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDTO is the database row of a notification. Metadata is a jsonb
// object of string values.
type NotificationDTO struct {
	ID               uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	PrincipalID      *uuid.UUID                            `gorm:"type:uuid;index"`
	Email            string                                `gorm:"type:varchar(255);index;not null"`
	Kind             string                                `gorm:"type:varchar(64);not null"`
	Title            string                                `gorm:"type:varchar(255);not null"`
	Body             string                                `gorm:"type:text"`
	RelatedRequestID *uuid.UUID                            `gorm:"type:uuid;index"`
	Metadata         datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	IsRead           bool                                  `gorm:"not null;index"`
	CreatedAt        time.Time                             `gorm:"index;not null;autoCreateTime:false"`
}

// TableName overrides GORM's default naming convention.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	metadata := aggregate.Metadata()
	if metadata == nil {
		metadata = map[string]string{}
	}

	dto := NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		Email:     aggregate.Email(),
		Kind:      aggregate.Kind().String(),
		Title:     aggregate.Title(),
		Body:      aggregate.Body(),
		Metadata:  datatypes.NewJSONType(metadata),
		IsRead:    aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if principalID, ok := aggregate.PrincipalID(); ok {
		raw := principalID.Bytes()
		dto.PrincipalID = &raw
	}

	if requestID, ok := aggregate.RelatedRequestID(); ok {
		raw := requestID.Bytes()
		dto.RelatedRequestID = &raw
	}

	return dto
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	principalID, err := optionalUUID(dto.PrincipalID)
	if err != nil {
		return nil, err
	}

	requestID, err := optionalUUID(dto.RelatedRequestID)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		notification.NewRecipient(dto.Email, principalID),
		notification.Content{
			Kind:             notification.Kind(dto.Kind),
			Title:            dto.Title,
			Body:             dto.Body,
			RelatedRequestID: requestID,
			Metadata:         dto.Metadata.Data(),
		},
		dto.IsRead,
		dto.CreatedAt,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
