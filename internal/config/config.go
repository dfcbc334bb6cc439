package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	S3Bucket string
	S3Region string

	CheckoutAPIKey string

	// FreeSurveyQuota is how many surveys an account may create without any
	// purchased quota.
	FreeSurveyQuota int

	// SnapshotRetention is how long deleted-user snapshots keep identity
	// fields before the retention scheduler anonymizes them.
	SnapshotRetention time.Duration
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        envOr("SERVER_PORT", "8080"),
		DBHost:            envOr("DB_HOST", "localhost"),
		DBPort:            envOr("DB_PORT", "5432"),
		DBUser:            envOr("DB_USER", "postgres"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            envOr("DB_NAME", "surveys"),
		DBSSLMode:         envOr("DB_SSLMODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          envOr("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:      envOr("SMTP_FROM_NAME", "Survey Platform"),
		SMTPFromEmail:     os.Getenv("SMTP_FROM_EMAIL"),
		S3Bucket:          os.Getenv("S3_BUCKET_NAME"),
		S3Region:          envOr("S3_REGION", "us-east-1"),
		CheckoutAPIKey:    os.Getenv("CHECKOUT_API_KEY"),
		FreeSurveyQuota:   3,
		SnapshotRetention: 10 * 365 * 24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if v := os.Getenv("FREE_SURVEY_QUOTA"); v != "" {
		quota, err := strconv.Atoi(v)
		if err != nil || quota < 0 {
			return nil, fmt.Errorf("invalid FREE_SURVEY_QUOTA %q", v)
		}
		cfg.FreeSurveyQuota = quota
	}

	if v := os.Getenv("SNAPSHOT_RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("invalid SNAPSHOT_RETENTION_DAYS %q", v)
		}
		cfg.SnapshotRetention = time.Duration(days) * 24 * time.Hour
	}

	return cfg, nil
}

// GetDBConnString builds the lib/pq connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
