package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	ADMIN_USER      string
	ADMIN_PASS      string
	ADMIN_PASS_HASH string
	SESSION_SECRET  string

	GOOGLE_SERVICE_ACCOUNT_JSON string
	BOLDSEN_SHEET_ID            string
	ZENIA_SHEET_ID              string

	CONTENT_FILE    string
	ART_PRINTS_FILE string

	SMTP_HOST        string
	SMTP_PORT        string
	SMTP_FROM        string
	SMTP_PASSWORD    string
	CONTACT_TO_EMAIL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	ADMIN_USER = getEnv("ADMIN_USER", "")
	ADMIN_PASS = getEnv("ADMIN_PASS", "")
	ADMIN_PASS_HASH = getEnv("ADMIN_PASS_HASH", "")
	SESSION_SECRET = getEnv("SESSION_SECRET", "")

	// Missing Google credentials switch the artwork repository into mock mode
	// instead of failing startup.
	GOOGLE_SERVICE_ACCOUNT_JSON = getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	BOLDSEN_SHEET_ID = getEnv("BOLDSEN_SHEET_ID", "13A02EeZQ40iGU36wD0zGBd90MBQTqplKvhh6To29U1Y")
	ZENIA_SHEET_ID = getEnv("ZENIA_SHEET_ID", "13eBPgqjhlQO84Ob-kzvbmJ9ZxP7XS0avszsVSlhfM8Y")

	CONTENT_FILE = getEnv("CONTENT_FILE", "data/page-content.json")
	ART_PRINTS_FILE = getEnv("ART_PRINTS_FILE", "data/art-prints.json")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	CONTACT_TO_EMAIL = getEnv("CONTACT_TO_EMAIL", "")

	if ADMIN_USER == "" {
		log.Println("ADMIN_USER not set. The admin console cannot be logged into.")
	}
	if SESSION_SECRET == "" {
		log.Println("SESSION_SECRET not set. Admin sessions cannot be issued.")
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
