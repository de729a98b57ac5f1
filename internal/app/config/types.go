package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		ShutdownTimeout int

		MaxRequests               int
		MaxTimeRequestsPerSeconds int

		RabbitMQMailerQueue string

		DocumentURLExpiryInHour       int
		RenderWorkerIntervalInSeconds int
		RenderRetryGraceInSeconds     int
		RenderWorkerBatchSize         int

		MailerSendsPerSecond float64
	}

	JWT struct {
		Secret string
	}
)
