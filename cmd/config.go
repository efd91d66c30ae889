package cmd

import (
	"time"

	"laundry/internal/core/application/notifier"
	"laundry/internal/core/application/usecases/commands"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string

	LogFormat string
	LogLevel  string
	LogFile   string

	Email notifier.Config
	SMTP  SMTPConfig
	// SESRegion selects the region of the provider transport.
	SESRegion string

	Policy           commands.Policy
	SanitizeSchedule string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// DefaultEmailConfig is the console transport without throttling.
func DefaultEmailConfig() notifier.Config {
	return notifier.Config{
		Transport:   notifier.TransportConsole,
		FromAddress: "noreply@sophisticanlaundry.com",
		SendTimeout: 10 * time.Second,
	}
}
