package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GIN_MODE", "DATABASE_PATH", "CONTENT_PATH", "LOG_LEVEL", "LOG_FORMAT",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "CONTACT_RATE_PER_MIN", "VISITOR_RETENTION_DAYS", "VISITOR_SALT",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Equal(t, 3, cfg.ContactPerMinute)
	assert.Equal(t, 365*24*time.Hour, cfg.VisitorRetention)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("CONTACT_RATE_PER_MIN", "10")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, "me@example.com", cfg.SMTP.To)
	assert.Equal(t, 10, cfg.ContactPerMinute)
}

func TestFromEnv_BadInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("VISITOR_RETENTION_DAYS", "forever")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "VISITOR_RETENTION_DAYS")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	os.Unsetenv("ADMIN_USERNAME")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nADMIN_USERNAME=ika\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ADMIN_USERNAME")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "ika", cfg.Admin.Username)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}
