package config

import "mediplan-service/internal/pkg/utils"

type InternalConfig struct {
	App      App
	AI       AppAI
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	BaseUrl                    string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	ScheduleCacheTTLInMinutes  int
}

type AppAI struct {
	OpenAIBaseUrl           string
	OpenAIAPIKey            string
	GroqBaseUrl             string
	GroqAPIKey              string
	RequestTimeoutInSeconds int
}

type AppMinio struct {
	DocumentBucketName        string
	DocumentMaxUploadSizeInMB int64
}

type AppRabbitMQ struct {
	ReminderQueue string
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			BaseUrl:                    utils.GetEnvString("APP_BASE_URL", "http://localhost:8080/api/v1/"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
			ScheduleCacheTTLInMinutes:  utils.GetEnvInt("APP_SCHEDULE_CACHE_TTL_IN_MINUTES", 30),
		},
		AI: AppAI{
			OpenAIBaseUrl:           utils.GetEnvString("AI_OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIAPIKey:            utils.GetEnvString("AI_OPENAI_API_KEY", ""),
			GroqBaseUrl:             utils.GetEnvString("AI_GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			GroqAPIKey:              utils.GetEnvString("AI_GROQ_API_KEY", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("AI_REQUEST_TIMEOUT_IN_SECONDS", 30),
		},
		Minio: AppMinio{
			DocumentBucketName:        utils.GetEnvString("APP_MINIO_DOCUMENT_BUCKET_NAME", "review-documents"),
			DocumentMaxUploadSizeInMB: utils.GetEnvInt64("APP_MINIO_DOCUMENT_UPLOAD_MAX_SIZE_IN_MB", 10),
		},
		RabbitMQ: AppRabbitMQ{
			ReminderQueue: utils.GetEnvString("APP_RABBITMQ_REMINDER_QUEUE", "schedule-reminders"),
		},
	}
}
