package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultCategories is the built-in transaction category allow-list,
// overridable via the CATEGORIES environment variable.
var DefaultCategories = []string{
	"Food & Dining",
	"Shopping",
	"Transportation",
	"Bills & Utilities",
	"Entertainment",
	"Healthcare",
	"Education",
	"Personal Care",
	"Travel",
	"Income",
	"Other",
}

type Config struct {
	DB         DBConfig
	Auth       AuthConfig
	AI         AIConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Server     ServerConfig
	Categories []string
}

type DBConfig struct {
	DBPath string // path to the SQLite file
}

type AuthConfig struct {
	JWTSecret          string
	JWTAlgorithm       string
	AccessTokenMinutes int
}

type AIConfig struct {
	GeminiAPIKey string
	Model        string
	BaseURL      string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

type ServerConfig struct {
	Port        int
	CORSOrigins []string
}

func Load() *Config {
	// Load the .env file when present, otherwise rely on the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/finance.db"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			JWTAlgorithm:       getEnv("JWT_ALGORITHM", "HS256"),
			AccessTokenMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		},
		AI: AIConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			// Empty means no broker: the audit producer is skipped.
			Brokers:    getEnvAsSlice("KAFKA_BROKERS", nil),
			AuditTopic: getEnv("KAFKA_AUDIT_TOPIC", "finance.transactions.audit"),
		},
		Server: ServerConfig{
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			CORSOrigins: getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		Categories: getEnvAsSlice("CATEGORIES", DefaultCategories),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
