package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AppName       string
	AppVersion    string
	PublicBaseURL string

	// Intent pipeline
	DataDir             string
	LawsDir             string
	ModelPath           string
	ConfidenceThreshold float64
	RandomSeed          int64

	// Conversation log storage
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	LogResponseMax int

	// HTTP surface
	AdminJWTSecret     string
	CORSAllowedOrigins string
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AppName:       getEnv("APP_NAME", "ARAM Legal Awareness Assistant"),
		AppVersion:    getEnv("APP_VERSION", "3.0"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		DataDir:             getEnv("DATA_DIR", "data"),
		LawsDir:             getEnv("LAWS_DIR", "laws"),
		ModelPath:           getEnv("MODEL_PATH", "data/model.json"),
		ConfidenceThreshold: getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.15),
		RandomSeed:          getEnvAsInt64("RANDOM_SEED", 0),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),
		LogResponseMax: getEnvAsInt("LOG_RESPONSE_MAX", 100),

		AdminJWTSecret:     getEnv("ADMIN_JWT_SECRET", ""),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
