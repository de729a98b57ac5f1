package config

import (
	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "prescriptions"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@medibook.local"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),

			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),

			RabbitMQMailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "medibook.mailer"),

			DocumentURLExpiryInHour:       utils.GetEnvInt("APP_DOCUMENT_URL_EXPIRY_IN_HOUR", 24),
			RenderWorkerIntervalInSeconds: utils.GetEnvInt("APP_RENDER_WORKER_INTERVAL_IN_SECONDS", 60),
			RenderRetryGraceInSeconds:     utils.GetEnvInt("APP_RENDER_RETRY_GRACE_IN_SECONDS", 120),
			RenderWorkerBatchSize:         utils.GetEnvInt("APP_RENDER_WORKER_BATCH_SIZE", 10),

			MailerSendsPerSecond: utils.GetEnvFloat("APP_MAILER_SENDS_PER_SECOND", 1),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
