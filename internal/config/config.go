package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisURL string

	JWTSecret string
	JWTTTL    time.Duration

	StorageDriver string
	UploadDir     string
	MaxUploadSize int64

	MeiliSearchHost string
	MeiliMasterKey  string

	AnnouncementRateLimit time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "campus_clubs"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),
	}

	// Tokens last a week unless overridden.
	ttlHours := 24 * 7
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %w", err)
		}
		ttlHours = parsed
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour

	cfg.MaxUploadSize = 5 << 20 // 5MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_FILE_SIZE: %w", err)
		}
		cfg.MaxUploadSize = parsed
	}

	var err error
	cfg.AnnouncementRateLimit, err = time.ParseDuration(getEnv("RATE_LIMIT_ANNOUNCEMENT", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_ANNOUNCEMENT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
