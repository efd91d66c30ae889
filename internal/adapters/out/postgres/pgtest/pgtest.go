// Package pgtest starts a throwaway PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container and a GORM connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates the given models. The connection
// translates driver errors the same way the application does.
func Start(ctx context.Context, models ...any) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	database := &Database{Container: container}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	database.DB = db

	if err = db.AutoMigrate(models...); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties the given tables.
func (d *Database) Truncate(tables ...string) error {
	for _, table := range tables {
		if err := d.DB.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
