package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "development" or "production"
	DBUrl       string
	FrontendURL string
	// Primary email transport (SendGrid API)
	SendGridAPIKey    string
	SendGridFromEmail string
	// Secondary email transport (Gmail SMTP)
	GmailHost        string
	GmailPort        string
	GmailUser        string
	GmailAppPassword string
	// Owner notification address. No hardcoded fallback: if unset the
	// notifier fails fast instead of mailing a default inbox.
	ContactEmailTo string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	// Admin Configuration
	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "production"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SendGrid Configuration
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", getEnv("EMAIL_USER", "")),
		// Gmail SMTP Configuration
		GmailHost:        getEnv("GMAIL_SMTP_HOST", "smtp.gmail.com"),
		GmailPort:        getEnv("GMAIL_SMTP_PORT", "587"),
		GmailUser:        getEnv("EMAIL_USER", ""),
		GmailAppPassword: getEnv("EMAIL_PASS", ""),
		// Owner notification address
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (100 requests per 15 minutes globally,
		// stricter on the contact form itself)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Admin Configuration
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	// Basic sanity warnings so a misconfigured deploy is diagnosable from logs
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Submissions will not be persisted.")
	}
	if cfg.SendGridAPIKey == "" {
		log.Println("WARNING: SENDGRID_API_KEY not configured. Primary email transport disabled.")
	}
	if cfg.GmailUser == "" || cfg.GmailAppPassword == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS not configured. Gmail fallback transport disabled.")
	}
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_EMAIL_TO is missing. Contact notifications cannot be delivered.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsDevelopment reports whether error responses may carry internal detail.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
