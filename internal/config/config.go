package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Notifier adapter selection.
const (
	NotifierEmail = "email"
	NotifierKafka = "kafka"
	NotifierRedis = "redis"
)

// Config holds runtime settings, read from the environment with optional
// .env overrides for local development.
type Config struct {
	HTTPAddr     string
	Notifier     string
	KafkaBrokers []string
	KafkaTopic   string
	RedisAddr    string
	RedisStream  string
	LogLevel     string
}

// Load reads configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		Notifier:     getEnv("NOTIFIER", NotifierEmail),
		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "account_notifications"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisStream:  getEnv("REDIS_STREAM", "account-notifications"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
