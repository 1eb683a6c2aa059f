package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL   string
	Port          string
	SessionTTL    time.Duration
	SessionCookie string
	CookieSecure  bool
	LogLevel      string
	CORSOrigins   string
	RateLimitMax  int

	// OwnerOnlyDelete restricts wedding deletion to the creating user.
	// Off by default: any authenticated user may delete any wedding,
	// matching the collaborative-planning behavior of the original app.
	OwnerOnlyDelete bool
}

func Load() *Config {
	return &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            envOr("PORT", "8080"),
		SessionTTL:      envDuration("SESSION_TTL", 7*24*time.Hour),
		SessionCookie:   envOr("SESSION_COOKIE", "wp_session"),
		CookieSecure:    envBool("COOKIE_SECURE", false),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		CORSOrigins:     envOr("CORS_ORIGINS", "http://localhost:5173"),
		RateLimitMax:    envInt("RATE_LIMIT_MAX", 20),
		OwnerOnlyDelete: envBool("OWNER_ONLY_DELETE", false),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
