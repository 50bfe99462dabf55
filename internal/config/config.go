// Package config loads application configuration from environment
// variables. Required keys are validated at boot so a misconfigured
// deployment fails before it accepts traffic, not at first use.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"movers-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr       string
	AllowedOrigins []string

	// Postgres
	DatabaseURL string

	// Redis. Optional: when RedisAddr is empty the submission rate
	// limiter is simply not installed.
	RedisAddr string
	RedisPass string

	// Stripe
	StripeSecretKey string

	// Admin API
	JWT           jwt.Config
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// SMTP. Optional: when SMTPHost is empty notifications are logged
	// instead of sent.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFromName string
	SMTPSecure   bool
	InternalTo   string
}

// Load reads environment variables into AppConfig. Returns an error
// listing every required variable that is not set.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8000"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme-now"),
		AdminName:     getEnv("ADMIN_NAME", "Site Admin"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Summit Movers"),
		SMTPSecure:   strings.ToLower(getEnv("SMTP_SECURE", "true")) == "true",
		InternalTo:   getEnv("LEADS_INBOX", ""),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	if cfg.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	cfg.JWT = jwt.Config{
		Secret:   secret,
		Issuer:   "movers-service",
		Audience: "movers-admin",
		TTL:      12 * time.Hour,
	}

	if len(missing) > 0 {
		return AppConfig{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
