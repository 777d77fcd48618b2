package config_test

import (
	"testing"
	"time"

	"github.com/examhub/examhub-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 7, cfg.JWT.ExpiryDays)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "Exam HUB", cfg.Mail.FromName)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRY_DAYS", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 48*time.Hour, cfg.JWT.Expiry())
}

func TestLoad_MailFromFallsBackToUser(t *testing.T) {
	t.Setenv("MAIL_USER", "noreply@examhub.app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "noreply@examhub.app", cfg.Mail.From)
}

func TestDatabaseDSN(t *testing.T) {
	d := config.DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "examhub", SSLMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=examhub sslmode=disable", d.DSN())
}
