package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/delivery/http/controllers"
	"mediplan-service/internal/app/delivery/http/middlewares"
	"mediplan-service/internal/app/delivery/http/routers"
	"mediplan-service/internal/app/drivers/database"
	"mediplan-service/internal/app/drivers/logger"
	"mediplan-service/internal/app/drivers/messaging"
	"mediplan-service/internal/app/drivers/storage"
	"mediplan-service/internal/app/services/core/documents"
	"mediplan-service/internal/app/services/core/instructions"
	"mediplan-service/internal/app/services/core/prescriptions"
	"mediplan-service/internal/app/services/core/schedules"
	"mediplan-service/internal/app/services/shared/redis"
	"mediplan-service/internal/app/services/shared/reminders"
	sharedstorage "mediplan-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logrusLogger := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		logrusLogger.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrusLogger.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrusLogger.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLogger.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Errorf("Error while closing drivers: %v", err)
	}

	logrusLogger.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	reminderQueueService, err := reminders.NewReminderQueueService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.ReminderQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Schedule
	scheduleUsecase := schedules.NewScheduleUsecase(bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Prescription
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		redisRepository,
		reminderQueueService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// Instruction
	aiClient := instructions.NewAIClient(bootstrap.InternalConfig.AI, bootstrap.Logger)
	instructionUsecase := instructions.NewInstructionUsecase(aiClient, bootstrap.Logger)
	instructionController := controllers.NewInstructionController(bootstrap.Logger, instructionUsecase)

	// Document
	documentMongoRepository := documents.NewDocumentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	documentUsecase := documents.NewDocumentUsecase(
		documentMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	documentController := controllers.NewDocumentController(
		bootstrap.Logger,
		documentUsecase,
		bootstrap.InternalConfig.App.BaseUrl,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		scheduleController,
		prescriptionController,
		instructionController,
		documentController,
	)

	return nil
}
