package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisAddr     string
	RedisPassword string

	// JWT
	JWTSecret    string
	JWTExpiresIn string

	// Session
	SessionSecret string

	// Razorpay
	RazorpayKeyID     string
	RazorpayKeySecret string

	// GCP Storage
	GCPBucketName                string
	GoogleApplicationCredentials string

	// SMTP
	SMTPEmail    string
	SMTPPassword string

	// Telegram
	TelegramAPIBase string

	// Allowed Origins
	AllowedOrigins string
}

var AppConfig *Config

// LoadConfig loads environment variables into Config struct
func LoadConfig() {
	// Load .env file if it exists (optional in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:                         getEnv("PORT", "5500"),
		Environment:                  getEnv("APP_ENV", "development"),
		DatabaseURL:                  getEnv("DATABASE_URL", ""),
		RedisAddr:                    getEnv("REDIS_ADDR", ""),
		RedisPassword:                getEnv("REDIS_PASSWORD", ""),
		JWTSecret:                    getEnv("JWT_SECRET", ""),
		JWTExpiresIn:                 getEnv("JWT_EXPIRES_IN", "7d"),
		SessionSecret:                getEnv("SESSION_SECRET", ""),
		RazorpayKeyID:                getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:            getEnv("RAZORPAY_KEY_SECRET", ""),
		GCPBucketName:                getEnv("GCP_BUCKET_NAME", ""),
		GoogleApplicationCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		SMTPEmail:                    getEnv("SMTP_EMAIL", ""),
		SMTPPassword:                 getEnv("SMTP_PASSWORD", ""),
		TelegramAPIBase:              getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
		AllowedOrigins:               getEnv("ALLOWED_ORIGINS", ""),
	}

	// Validate required config
	if AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	log.Println("✅ Configuration loaded successfully")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return AppConfig.Environment == "production"
}

// IsDevelopment returns true if running in development mode
func IsDevelopment() bool {
	return AppConfig.Environment == "development" || AppConfig.Environment == ""
}
