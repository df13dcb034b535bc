package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"subscriptions/cmd"
	httpin "subscriptions/internal/adapters/in/http"
	"subscriptions/internal/adapters/out/kafka"
	"subscriptions/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	publisher, err := kafka.NewEventPublisher(
		[]string{configs.KafkaHost},
		configs.KafkaSubscriptionsChangedTopic,
		configs.KafkaDeliveriesChangedTopic,
		logger,
	)
	if err != nil {
		log.Fatalf("Error connecting to kafka: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
	)

	jobManager := jobs.NewJobManager(
		app.CreateExpireSubscriptionsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                       goDotEnvVariable("HTTP_PORT"),
		DBHost:                         goDotEnvVariable("DB_HOST"),
		DBPort:                         goDotEnvVariable("DB_PORT"),
		DBUser:                         goDotEnvVariable("DB_USER"),
		DBPassword:                     goDotEnvVariable("DB_PASSWORD"),
		DBName:                         goDotEnvVariable("DB_NAME"),
		DBSslMode:                      goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                      goDotEnvVariable("KAFKA_HOST"),
		KafkaSubscriptionsChangedTopic: goDotEnvVariable("KAFKA_SUBSCRIPTIONS_CHANGED_TOPIC"),
		KafkaDeliveriesChangedTopic:    goDotEnvVariable("KAFKA_DELIVERIES_CHANGED_TOPIC"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateSubscribeCommandHandler(),
		app.CreatePauseSubscriptionCommandHandler(),
		app.CreateResumeSubscriptionCommandHandler(),
		app.CreateCancelSubscriptionCommandHandler(),
		app.CreateGetCustomerSubscriptionQueryHandler(),
		app.CreateGetPendingDeliveriesQueryHandler(),
		app.CreateGetAssignableAgentsQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
