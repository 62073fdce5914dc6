package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Session configuration
	JWTSecret string

	// SMTP configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
	EmailName    string
	AdminEmail   string

	// S3 configuration
	S3Bucket  string
	AWSRegion string

	// Link generation
	FrontendURL    string
	AllowedOrigins []string
}

// LoadConfig creates a new Config with values from environment variables,
// falling back to Docker secrets for sensitive fields. In CI only environment
// variables are consulted.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getSetting("SERVER_PORT", "8080"),
		ServerHost:    getSetting("SERVER_HOST", "0.0.0.0"),
		DBHost:        getSetting("DB_HOST", "localhost"),
		DBPort:        getSetting("DB_PORT", "5432"),
		DBUser:        getSetting("DB_USER", ""),
		DBPassword:    getSetting("DB_PASSWORD", ""),
		DBName:        getSetting("DB_NAME", "aris"),
		DBSSLMode:     getSetting("DB_SSL_MODE", "disable"),
		RedisHost:     getSetting("REDIS_HOST", "localhost"),
		RedisPort:     getSetting("REDIS_PORT", "6379"),
		RedisPassword: getSetting("REDIS_PASSWORD", ""),
		RedisURL:      getSetting("REDIS_URL", ""),
		JWTSecret:     getSetting("JWT_SECRET", ""),
		SMTPHost:      getSetting("SMTP_HOST", ""),
		SMTPPort:      getSetting("SMTP_PORT", ""),
		SMTPUsername:  getSetting("SMTP_USERNAME", ""),
		SMTPPassword:  getSetting("SMTP_PASSWORD", ""),
		EmailFrom:     getSetting("EMAIL_FROM", ""),
		EmailName:     getSetting("EMAIL_FROM_NAME", "ARIS"),
		AdminEmail:    getSetting("ADMIN_EMAIL", ""),
		S3Bucket:      getSetting("S3_BUCKET_NAME", "aris-uploads"),
		AWSRegion:     getSetting("AWS_REGION", ""),
		FrontendURL:   getSetting("FRONTEND_URL", "http://localhost:3000"),
	}

	if origins := getSetting("ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	if redisDB := getSetting("REDIS_DB", "0"); redisDB != "" {
		n, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", redisDB, err)
		}
		cfg.RedisDB = n
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Environment names the runtime environment. ARIS distinguishes three:
// development (the default), ci, and production.
type Environment string

const (
	Development Environment = "development"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime environment. A CI=true variable wins;
// otherwise ENV=production selects production and anything else falls back
// to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	if os.Getenv("ENV") == "production" {
		return Production
	}
	return Development
}

// IsCI reports whether the process runs under CI. Docker secrets are not
// consulted there.
func IsCI() bool {
	return GetEnvironment() == CI
}

// IsProduction reports whether the process runs in production.
func IsProduction() bool {
	return GetEnvironment() == Production
}

// getSetting reads an environment variable, then the matching Docker secret
// (lowercased name), then the fallback.
func getSetting(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	if !IsCI() {
		if value := readSecret(strings.ToLower(name)); value != "" {
			return value
		}
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
