package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"laundry/cmd"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/notifier"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/request"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	configs, err := getConfigs()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := cmd.NewLogger(configs.LogFormat, configs.LogLevel, configs.LogFile)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, registry, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, registry, configs.HTTPPort)
}

func getConfigs() (cmd.Config, error) {
	email := cmd.DefaultEmailConfig()
	if v := goDotEnvVariable("EMAIL_TRANSPORT"); v != "" {
		email.Transport = notifier.Transport(v)
	}
	if v := goDotEnvVariable("DEFAULT_FROM_EMAIL"); v != "" {
		email.FromAddress = v
	}
	if v := goDotEnvVariable("STAFF_EMAILS"); v != "" {
		email.StaffEmails = strings.Split(v, ",")
	}

	var list []error
	var err error
	if email.ThrottleRate, err = floatVariable("EMAIL_THROTTLE_RATE", 0); err != nil {
		list = append(list, err)
	}
	if email.SendTimeout, err = durationVariable("EMAIL_SEND_TIMEOUT", email.SendTimeout); err != nil {
		list = append(list, err)
	}
	smtpPort, err := intVariable("SMTP_PORT", 0)
	if err != nil {
		list = append(list, err)
	}

	policy := commands.DefaultPolicy()
	if policy.AssignRequiresStaff, err = boolVariable("ASSIGN_REQUIRES_STAFF", false); err != nil {
		list = append(list, err)
	}
	if v := goDotEnvVariable("REASSIGN_MODE"); v != "" {
		if policy.ReassignMode, err = request.ParseReassignMode(v); err != nil {
			list = append(list, err)
		}
	}
	if err = errors.Join(list...); err != nil {
		return cmd.Config{}, err
	}
	if err = email.Validate(); err != nil {
		return cmd.Config{}, err
	}

	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		LogFormat:  goDotEnvVariable("LOG_FORMAT"),
		LogLevel:   goDotEnvVariable("LOG_LEVEL"),
		LogFile:    goDotEnvVariable("LOG_FILE"),
		Email:      email,
		SMTP: cmd.SMTPConfig{
			Host:     goDotEnvVariable("SMTP_HOST"),
			Port:     smtpPort,
			Username: goDotEnvVariable("SMTP_USERNAME"),
			Password: goDotEnvVariable("SMTP_PASSWORD"),
		},
		SESRegion:        goDotEnvVariable("SES_REGION"),
		Policy:           policy,
		SanitizeSchedule: goDotEnvVariable("SANITIZE_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.JWTSecret == "" {
		return cmd.Config{}, errors.New("JWT_SECRET is required")
	}
	return config, nil
}

func goDotEnvVariable(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func floatVariable(key string, fallback float64) (float64, error) {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func intVariable(key string, fallback int) (int, error) {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func boolVariable(key string, fallback bool) (bool, error) {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, registry *prometheus.Registry, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	app.CreateServer().Register(e, app.CreateAuthenticator().Middleware())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
