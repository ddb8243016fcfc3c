package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	AWS      AWSConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Services ServicesConfig
	Chunker  ChunkerConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	MaxFileSize int64 // bytes
	WorkerCount int
}

type AWSConfig struct {
	Region               string
	Endpoint             string // custom endpoint for MinIO/localstack
	AccessKeyID          string
	SecretAccessKey      string
	UsePathStyle         bool
	PresignExpireSeconds int
}

type RedisConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type ServicesConfig struct {
	AuthBaseURL    string
	ContentBaseURL string
}

type ChunkerConfig struct {
	JobQueue       string
	CancelQueue    string
	ProcessedQueue string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8078"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 5*1024*1024*1024), // 5GB
			WorkerCount: getEnvAsInt("UPLOAD_WORKER_COUNT", 4),
		},
		AWS: AWSConfig{
			Region:               getEnv("AWS_REGION", "us-east-1"),
			Endpoint:             getEnv("AWS_S3_ENDPOINT", ""),
			AccessKeyID:          getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
			UsePathStyle:         getEnv("AWS_S3_USE_PATH_STYLE", "true") == "true",
			PresignExpireSeconds: getEnvAsInt("AWS_PRESIGN_EXPIRE_SECONDS", 60),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "media_service"),
		},
		Services: ServicesConfig{
			AuthBaseURL:    getEnv("AUTH_SERVICE_URL", "http://localhost:8079"),
			ContentBaseURL: getEnv("CONTENT_SERVICE_URL", "http://localhost:8085"),
		},
		Chunker: ChunkerConfig{
			JobQueue:       getEnv("CHUNKER_JOB_QUEUE", "chunker_job_queue"),
			CancelQueue:    getEnv("CHUNKER_CANCEL_QUEUE", "chunker_cancel_queue"),
			ProcessedQueue: getEnv("CHUNKER_PROCESSED_QUEUE", "chunker_processed_queue"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
