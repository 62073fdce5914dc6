package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "aris")
	t.Setenv("ENV", "test")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRETS_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "ARIS", cfg.EmailName)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadConfigReadsDockerSecrets(t *testing.T) {
	secretsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "jwt_secret"), []byte("from-secret\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("s3cret"), 0o600))

	t.Setenv("SECRETS_DIR", secretsDir)
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "aris")
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	// Secrets are trimmed and only consulted when the env var is unset.
	assert.Equal(t, "from-secret", cfg.JWTSecret)
	assert.Equal(t, "s3cret", cfg.DBPassword)
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Setenv("ENV", "test")

	err := ValidateConfig(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "DB_USER is required")

	valid := &Config{
		JWTSecret:  "secret",
		DBUser:     "postgres",
		DBName:     "aris",
		ServerPort: "8080",
	}
	assert.NoError(t, ValidateConfig(valid))
}

func TestValidateConfigRequiresDBPasswordInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "")

	cfg := &Config{
		JWTSecret:  "secret",
		DBUser:     "postgres",
		DBName:     "aris",
		ServerPort: "8080",
	}
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD is required in production")

	cfg.DBPassword = "s3cret"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
