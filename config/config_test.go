package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CALENDAR_ID", "cal@group.calendar.google.com")
	t.Setenv("SMTP_USER", "mailer@example.test")
	t.Setenv("SMTP_PASS", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "booking-app-1af02", cfg.Firebase.ProjectID)
	assert.Equal(t, "Asia/Makassar", cfg.Calendar.TimeZone)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.UseTLS)
	assert.Equal(t, "mailer@example.test", cfg.SMTP.FromAddress, "falls back to SMTP_USER")
	assert.False(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, "0 0 7 * * *", cfg.Reminder.Spec)
	assert.InDelta(t, 25, cfg.RateLimit.RPS, 0.001)
	assert.Equal(t, 50, cfg.RateLimit.Burst)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_SLOTS_TTL_SECONDS", "60")
	t.Setenv("ADMIN_EMAILS", "a1@example.test, a2@example.test,")
	t.Setenv("REMINDER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 60, cfg.Redis.TTLSeconds)
	assert.Equal(t, []string{"a1@example.test", "a2@example.test"}, cfg.SMTP.AdminEmails)
	assert.False(t, cfg.Reminder.Enabled)
}

func TestLoad_MissingCalendarID(t *testing.T) {
	t.Setenv("CALENDAR_ID", "")
	t.Setenv("SMTP_USER", "mailer@example.test")
	t.Setenv("SMTP_PASS", "secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CALENDAR_ID")
}

func TestLoad_MissingSMTPCredentials(t *testing.T) {
	t.Setenv("CALENDAR_ID", "cal@group.calendar.google.com")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Equal(t, 0, getEnvAsInt("REDIS_DB", 0))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")
	assert.Nil(t, getEnvAsList("ADMIN_EMAILS"))

	t.Setenv("ADMIN_EMAILS", " a@example.test ,, b@example.test")
	assert.Equal(t, []string{"a@example.test", "b@example.test"}, getEnvAsList("ADMIN_EMAILS"))
}
