package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_DRIVER   string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string
	LOG_LEVEL   string

	JWT_TTL_HOURS int

	UPLOAD_DIR              string
	DEFAULT_MEMBER_PASSWORD string

	// membership policy
	PLAN_CATALOG           string
	EXPIRING_SOON_DAYS     int
	ALLOW_BACKDATED_EXPIRY bool

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	STRIPE_CURRENCY       string
	APP_URL               string

	RESEND_API_KEY string
	MAIL_FROM      string
	MAIL_TO        string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	SEED_ADMIN_USERNAME string
	SEED_ADMIN_PASSWORD string
	SEED_ADMIN_EMAIL    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	JWT_TTL_HOURS = getEnvInt("JWT_TTL_HOURS", 24)

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")
	DEFAULT_MEMBER_PASSWORD = getEnv("DEFAULT_MEMBER_PASSWORD", "123456")

	// empty means the built-in catalog
	PLAN_CATALOG = getEnv("PLAN_CATALOG", "")
	EXPIRING_SOON_DAYS = getEnvInt("EXPIRING_SOON_DAYS", 7)
	ALLOW_BACKDATED_EXPIRY = getEnvBool("ALLOW_BACKDATED_EXPIRY", true)

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	STRIPE_CURRENCY = strings.ToLower(getEnv("STRIPE_CURRENCY", "inr"))
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	RESEND_API_KEY = getEnv("RESEND_API_KEY", "")
	MAIL_FROM = getEnv("MAIL_FROM", "Boost Fitness <noreply@boostfitness.club>")
	MAIL_TO = getEnv("MAIL_TO", "")

	// Google sign-in is optional; routes are only mounted when a client id is set.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	SEED_ADMIN_USERNAME = getEnv("SEED_ADMIN_USERNAME", "")
	SEED_ADMIN_PASSWORD = getEnv("SEED_ADMIN_PASSWORD", "")
	SEED_ADMIN_EMAIL = getEnv("SEED_ADMIN_EMAIL", "")
}

// ExpiringWindow is the "expiring soon" look-ahead, 7 days unless configured.
func ExpiringWindow() time.Duration {
	days := EXPIRING_SOON_DAYS
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

func GoogleEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}

func StripeEnabled() bool {
	return STRIPE_SECRET_KEY != ""
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

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %q", key, raw)
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %q", key, raw)
	}
	return v
}
