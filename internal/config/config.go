// Package config reads the server configuration from the environment, after
// loading a .env file when one is present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GinMode      string
	DatabasePath string
	ContentPath  string

	LogLevel  string
	LogFormat string

	SMTP  SMTP
	Admin Admin

	ContactPerMinute int
	VisitorRetention time.Duration
	// VisitorSalt salts visitor IP hashes. Empty means a random salt per
	// process, so unique-visitor counts restart with the server.
	VisitorSalt string
}

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Enabled reports whether credentials are configured.
func (s SMTP) Enabled() bool { return s.User != "" && s.Pass != "" }

type Admin struct {
	Username string
	Password string
}

// Load reads .env files (missing files are not an error) and then the
// environment. Values already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         env("PORT", "8080"),
		GinMode:      env("GIN_MODE", "release"),
		DatabasePath: env("DATABASE_PATH", "portfolio.db"),
		ContentPath:  os.Getenv("CONTENT_PATH"),
		VisitorSalt:  os.Getenv("VISITOR_SALT"),
		LogLevel:     env("LOG_LEVEL", "info"),
		LogFormat:    env("LOG_FORMAT", "text"),
		SMTP: SMTP{
			Host: env("SMTP_HOST", "smtp.gmail.com"),
			Port: env("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
		Admin: Admin{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	var err error
	if cfg.ContactPerMinute, err = intEnv("CONTACT_RATE_PER_MIN", 3); err != nil {
		return Config{}, err
	}
	days, err := intEnv("VISITOR_RETENTION_DAYS", 365)
	if err != nil {
		return Config{}, err
	}
	cfg.VisitorRetention = time.Duration(days) * 24 * time.Hour

	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.User
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: expected a non-negative integer, got %q", key, v)
	}
	return n, nil
}
