package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Ai       AIConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ChatLogDir         string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	AlertEmail string
}

type AdminConfig struct {
	PasswordHash string // bcrypt hash of the admin password
	JWTSecret    string
	SessionTTL   time.Duration
}

type AIConfig struct {
	GeminiAPIKey        string
	ChatModel           string
	ImageModel          string
	GeneratedImageDir   string
	MaxRetries          int
	RequestTimeout      time.Duration
	RetryBudget         time.Duration // wall-clock cap across all attempts
	ConfidenceThreshold float64       // knowledge candidate cut-off, score at threshold counts
	CorpusCharBudget    int           // head-truncation limit for curriculum excerpts
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ChatLogDir:         getEnv("CHAT_LOG_DIR", "chat_logs"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "EduBot"),
			AlertEmail: getEnv("ALERT_EMAIL", ""),
		},
		Admin: AdminConfig{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			SessionTTL:   getEnvAsDuration("ADMIN_SESSION_TTL", 30*time.Minute),
		},
		Ai: AIConfig{
			GeminiAPIKey:        getEnv("GOOGLE_GEMINI_API_KEY", ""),
			ChatModel:           getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),
			ImageModel:          getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-exp"),
			GeneratedImageDir:   getEnv("GENERATED_IMAGE_DIR", "generated_images"),
			MaxRetries:          getEnvAsInt("AI_MAX_RETRIES", 3),
			RequestTimeout:      getEnvAsDuration("AI_REQUEST_TIMEOUT", 30*time.Second),
			RetryBudget:         getEnvAsDuration("AI_RETRY_BUDGET", 60*time.Second),
			ConfidenceThreshold: getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.6),
			CorpusCharBudget:    getEnvAsInt("CORPUS_CHAR_BUDGET", 100000),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "user_uploads"),
			MaxBytes: getEnvAsInt64("UPLOAD_MAX_BYTES", 300*1024*1024),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseInt(strValue, 10, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
