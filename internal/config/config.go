// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Fallback id strategies accepted by FALLBACK_IDS.
const (
	IDsSequential = "sequential"
	IDsUUID       = "uuid"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel slog.Level

	// PostgreSQL connection. DatabaseURL, when set, wins over the parts.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Valkey (Redis-compatible response cache). Empty host disables it.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	CacheTTL       time.Duration

	// Fallback data behavior
	FallbackIDs       string // "sequential" or "uuid"
	BlogRetryAttempts int
	BlogRetryDelay    time.Duration

	// Outgoing mail. The send-email endpoint delivers through SMTP; the
	// notifier posts to EmailEndpoint.
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	MailFrom      string
	OwnerEmail    string
	EmailEndpoint string
	// EmailToken is the bearer token of the send-email endpoint, shared
	// with the notifier. Empty limits the endpoint to loopback callers.
	EmailToken string
	// SMTPAllowedHosts lists hosts besides SMTPHost that a send-email
	// request may name in its config.
	SMTPAllowedHosts []string

	// Image CDN (unsigned preset upload)
	CDNUploadURL    string
	CDNCloudName    string
	CDNUploadPreset string

	// S3-compatible object storage
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Admin API bearer token, stored as a bcrypt hash. Empty leaves the
	// admin API open, which is only allowed outside production.
	AdminTokenHash string

	// Public write endpoints (contact, appointments, send-email)
	RateLimitPerMinute int
	RateLimitBurst     int

	// Comma-separated origins allowed to call the API from a browser.
	CORSOrigins string
	// Comma-separated proxy addresses or CIDRs whose forwarding headers
	// are believed when identifying clients.
	TrustedProxies string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode or a value does not parse.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:      envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:      envOrDefault("POSTGRES_USER", "folio"),
		DBPassword:  envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:      envOrDefault("POSTGRES_DB", "folio"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		FallbackIDs: strings.ToLower(envOrDefault("FALLBACK_IDS", IDsSequential)),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      envOrDefault("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      envOrDefault("MAIL_FROM", "portfolio@localhost"),
		OwnerEmail:    os.Getenv("OWNER_EMAIL"),
		EmailEndpoint: os.Getenv("EMAIL_ENDPOINT"),
		EmailToken:    os.Getenv("EMAIL_TOKEN"),

		SMTPAllowedHosts: listEnv("SMTP_ALLOWED_HOSTS"),

		CDNUploadURL:    envOrDefault("CDN_UPLOAD_URL", "https://api.cloudinary.com/v1_1"),
		CDNCloudName:    os.Getenv("CDN_CLOUD_NAME"),
		CDNUploadPreset: os.Getenv("CDN_UPLOAD_PRESET"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "folio-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),

		CORSOrigins:    envOrDefault("CORS_ORIGINS", "*"),
		TrustedProxies: os.Getenv("TRUSTED_PROXIES"),
	}

	var err error
	if cfg.LogLevel, err = logLevel(envOrDefault("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.BlogRetryAttempts, err = intEnv("BLOG_RETRY_ATTEMPTS", 3); err != nil {
		return nil, err
	}
	if cfg.BlogRetryDelay, err = durationEnv("BLOG_RETRY_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", 5); err != nil {
		return nil, err
	}

	if cfg.FallbackIDs != IDsSequential && cfg.FallbackIDs != IDsUUID {
		return nil, fmt.Errorf("FALLBACK_IDS must be %q or %q, got %q", IDsSequential, IDsUUID, cfg.FallbackIDs)
	}
	if cfg.BlogRetryAttempts < 1 {
		return nil, fmt.Errorf("BLOG_RETRY_ATTEMPTS must be at least 1, got %d", cfg.BlogRetryAttempts)
	}

	if cfg.Env == "production" {
		if cfg.DatabaseURL == "" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.AdminTokenHash == "" {
			return nil, fmt.Errorf("ADMIN_TOKEN_HASH must be set in production")
		}
		// Behind a reverse proxy on the same host every peer is loopback.
		if cfg.SMTPEnabled() && cfg.EmailToken == "" {
			return nil, fmt.Errorf("EMAIL_TOKEN must be set in production when SMTP is configured")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// SMTPEnabled reports whether outgoing mail can be delivered.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

// CDNEnabled reports whether the image CDN is configured.
func (c *Config) CDNEnabled() bool {
	return c.CDNCloudName != "" && c.CDNUploadPreset != ""
}

// S3Enabled reports whether object storage is configured.
func (c *Config) S3Enabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// NotifyEndpoint returns the URL the notifier posts to. Without an explicit
// EMAIL_ENDPOINT it is this server's own send-email route.
func (c *Config) NotifyEndpoint() string {
	if c.EmailEndpoint != "" {
		return c.EmailEndpoint
	}
	host := c.Host
	if host == "0.0.0.0" || host == "" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%s/api/send-email", host, c.Port)
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// listEnv splits a comma-separated variable, dropping empty items.
func listEnv(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func logLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}
