package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	UploadDir     string
	MaxUploadSize int64

	KafkaBrokers []string
}

const (
	defaultTokenTTL      = 24 * time.Hour
	defaultBcryptCost    = 12
	defaultMaxUploadSize = 5 << 20 // 5 MB
)

// LoadConfig reads configuration from the environment. A .env file is loaded
// first if present, matching local development setups.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      defaultTokenTTL,
		BcryptCost:    defaultBcryptCost,
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSize: defaultMaxUploadSize,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		c, err := strconv.Atoi(cost)
		if err != nil || c < 4 || c > 31 {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", cost)
		}
		cfg.BcryptCost = c
	}

	if size := os.Getenv("MAX_UPLOAD_SIZE"); size != "" {
		s, err := strconv.ParseInt(size, 10, 64)
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE %q", size)
		}
		cfg.MaxUploadSize = s
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
