package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Verification code backends.
const (
	BackendDynamo = "dynamo"
	BackendRedis  = "redis"
)

// Config holds all runtime configuration loaded from environment variables.
// It is read once at startup and never mutated afterwards.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	VerificationBackend string // "dynamo" | "redis"
	RedisAddr           string
	RedisPassword       string
	RedisDB             int

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion          string
	UserEventsTopicARN string // optional; registration events are not published when empty

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users      string
	EmailCodes string
	Counters   string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:      getEnv("DYNAMO_TABLE_USERS", "users"),
			EmailCodes: getEnv("DYNAMO_TABLE_EMAIL_CODES", "email_codes"),
			Counters:   getEnv("DYNAMO_TABLE_COUNTERS", "counters"),
		},

		VerificationBackend: getEnv("VERIFICATION_BACKEND", BackendDynamo),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		AccessTokenTTL:  getDuration("JWT_ACCESS_TTL", 30*time.Minute),
		RefreshTokenTTL: getDuration("JWT_REFRESH_TTL", 7*24*time.Hour),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion:          getEnv("SNS_REGION", "us-east-1"),
		UserEventsTopicARN: getEnv("SNS_USER_EVENTS_TOPIC_ARN", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// Validate reports configuration that would make token issuance unsound.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("JWT_ACCESS_TTL must be positive")
	}
	if c.RefreshTokenTTL <= c.AccessTokenTTL {
		return errors.New("JWT_REFRESH_TTL must be longer than JWT_ACCESS_TTL")
	}
	switch c.VerificationBackend {
	case BackendDynamo, BackendRedis:
	default:
		return errors.New("VERIFICATION_BACKEND must be dynamo or redis")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
