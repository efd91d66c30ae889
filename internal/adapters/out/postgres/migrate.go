package postgres

import (
	"laundry/internal/adapters/out/postgres/driverrepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/requestrepo"
	"laundry/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&driverrepo.DriverDTO{},
		&requestrepo.RequestDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
