package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	APP_ENV     string
	CORS_ORIGIN string

	GOOGLE_DRIVE_API_KEY      string
	MERCADO_PAGO_ACCESS_TOKEN string

	REDIS_ADDR string
	REDIS_PASS string
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "studio_session"

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	APP_ENV = getEnv("APP_ENV", "development")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	// Both integrations degrade gracefully when unset: photo sync reports
	// SyncUnavailable, payments report GatewayUnavailable.
	GOOGLE_DRIVE_API_KEY = getEnv("GOOGLE_DRIVE_API_KEY", "")
	MERCADO_PAGO_ACCESS_TOKEN = getEnv("MERCADO_PAGO_ACCESS_TOKEN", "")

	// When REDIS_ADDR is set, sessions live in Redis; otherwise in memory.
	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	REDIS_PASS = getEnv("REDIS_PASS", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
