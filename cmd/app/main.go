package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"backoffice/cmd"
	"backoffice/internal/adapters/out/postgres/accountrepo"
	"backoffice/internal/adapters/out/postgres/auditrepo"
	"backoffice/internal/adapters/out/postgres/customerrepo"
	"backoffice/internal/adapters/out/postgres/mediastore"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/productrepo"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	seedAdminAccount(&app, configs)
	startJobs(&app)
	startWebServer(&app, gormDB, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		JWTTTL:        durationEnvVariable("JWT_TTL", 24*time.Hour),
		AdminEmail:    goDotEnvVariable("ADMIN_EMAIL"),
		AdminPassword: goDotEnvVariable("ADMIN_PASSWORD"),
		PaymentWindow: durationEnvVariable("ORDER_PAYMENT_WINDOW", 30*time.Minute),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %s", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&accountrepo.AccountDTO{},
		&auditrepo.AuditRecordDTO{},
		&mediastore.MediaFileDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedAdminAccount makes sure the configured administrator login exists.
// Skipped when no admin credentials are configured.
func seedAdminAccount(app *cmd.CompositionRoot, configs cmd.Config) {
	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		return
	}

	command, err := commands.NewSeedAdminCommand(kernel.NewUUID(), configs.AdminEmail, configs.AdminPassword)
	if err != nil {
		log.Fatalf("Invalid admin seed configuration: %v", err)
	}

	handler := app.CreateSeedAdminCommandHandler()
	if err := handler.Handle(context.Background(), command); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateExpireStaleOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start scheduled jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, gormDB *gorm.DB, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := gormDB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, app.CreateAuthMiddleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
