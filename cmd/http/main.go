package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/prescriptions"
	"medibook-service/internal/app/services/core/statistics"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/mailer"
	"medibook-service/internal/app/services/shared/renderer"
	sharedstorage "medibook-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	lockerService := locker.NewLockService(bootstrap.Redis, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	documentRenderer := renderer.NewPDFRenderer(minioStorage, bootstrap.Logger)
	mailerService, err := mailer.NewMailerService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQMailerQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	bootstrap.Router.Use(httpMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(httpMiddlewares.Logging(bootstrap.Logger))

	// Doctor directory
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Prescriptions
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		doctorMongoRepository,
		appointmentMongoRepository,
		appointmentUsecase,
		documentRenderer,
		minioStorage,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// Statistics
	statisticUsecase := statistics.NewStatisticUsecase(
		appointmentMongoRepository,
		prescriptionMongoRepository,
		bootstrap.Logger,
	)
	statisticController := statistics.NewStatisticController(bootstrap.Logger, statisticUsecase)

	// Render retry worker
	renderWorker := prescriptions.NewRenderWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		prescriptionMongoRepository,
		prescriptionUsecase,
	)
	bootstrap.RenderWorkerStop = renderWorker.Start(context.Background())

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		appointmentController,
		prescriptionController,
		doctorController,
		statisticController,
	)
	return nil
}
