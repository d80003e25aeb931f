package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers    string
	ProductTopic    string
	ValidationTopic string
	ConsumerGroup   string

	// API Configuration
	APIPort string
	APIHost string

	// Validation
	MaxBatchSize int

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", "sqlite://prodcheck.db"),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", "localhost:9092"),
		ProductTopic:    getEnv("PRODUCT_TOPIC", "product-events"),
		ValidationTopic: getEnv("VALIDATION_TOPIC", "validation-events"),
		ConsumerGroup:   getEnv("CONSUMER_GROUP", "prodcheck-worker"),
		APIPort:         getEnv("API_PORT", "8080"),
		APIHost:         getEnv("API_HOST", "0.0.0.0"),
		MaxBatchSize:    getEnvAsInt("MAX_BATCH_SIZE", 10000),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
