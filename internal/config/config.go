package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port              string
	UploadDir         string
	JWTSecret         string
	AdminPassword     string
	WebhookURL        string
	LogLevel          slog.Level
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "8080"),
		UploadDir:         getenv("UPLOAD_DIR", "uploads"),
		JWTSecret:         getenv("JWT_SECRET", ""),
		AdminPassword:     getenv("ADMIN_PASSWORD", "admin123"),
		WebhookURL:        getenv("WEBHOOK_URL", ""),
		LogLevel:          parseLevel(getenv("LOG_LEVEL", "info")),
		ReadHeaderTimeout: parseDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(env string, def time.Duration) time.Duration {
	if v := os.Getenv(env); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
