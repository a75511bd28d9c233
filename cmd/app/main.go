package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"depot/cmd"
	depot_http "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/postgres/clientrepo"
	"depot/internal/adapters/out/postgres/failurereasonrepo"
	"depot/internal/adapters/out/postgres/manifestrepo"
	"depot/internal/adapters/out/postgres/parcelrepo"
	"depot/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&clientrepo.ClientDTO{},
		&parcelrepo.ParcelDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.LineItemDTO{},
		&failurereasonrepo.FailureReasonDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetDepotParcelsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := depot_http.NewServer(
		app.CreateCreateClientCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateChangeParcelWeightCommandHandler(),
		app.CreateCreateManifestCommandHandler(),
		app.CreateAssignParcelCommandHandler(),
		app.CreateBulkAssignParcelsCommandHandler(),
		app.CreateStartDistributionCommandHandler(),
		app.CreateCreateFailureReasonCommandHandler(),
		app.CreateAssignFailureReasonCommandHandler(),
		app.CreateGetManifestSummaryQueryHandler(),
		app.CreateGetDepotParcelsQueryHandler(),
		app.CreateListFailureReasonsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
