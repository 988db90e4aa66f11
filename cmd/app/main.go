package main

import (
	"fmt"
	"os"
	"strconv"

	"turtu/cmd"
	httpin "turtu/internal/adapters/in/http"
	"turtu/internal/adapters/out/postgres/assignmentrepo"
	"turtu/internal/adapters/out/postgres/driverrepo"
	"turtu/internal/adapters/out/postgres/logrepo"
	"turtu/internal/adapters/out/postgres/orderrepo"
	"turtu/internal/adapters/out/postgres/pricingrepo"
	"turtu/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		SMTPHost:         goDotEnvVariable("SMTP_HOST"),
		SMTPPort:         goDotEnvVariableInt("SMTP_PORT"),
		SMTPUser:         goDotEnvVariable("SMTP_USER"),
		SMTPPassword:     goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:         goDotEnvVariable("SMTP_FROM"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		AdminEmail:       goDotEnvVariable("ADMIN_EMAIL"),
		AdminPassword:    goDotEnvVariable("ADMIN_PASSWORD"),
		LogRetentionDays: goDotEnvVariableInt("LOG_RETENTION_DAYS"),
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

func goDotEnvVariableInt(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as integer: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignedOrderDTO{},
		&driverrepo.DriverDTO{},
		&pricingrepo.PricingRuleDTO{},
		&logrepo.LogEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(httpin.Tracker())
	e.Use(httpin.RequestLatency(app.Logger(logging.ServicePickupDrop)))

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
