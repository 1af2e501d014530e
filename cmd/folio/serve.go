// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/mail"
	"folio/internal/memstore"
	"folio/internal/middleware"
	"folio/internal/router"
	"folio/internal/service"
	"folio/internal/storage"
	"folio/internal/store"
	"folio/internal/upload"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	data, err := memstore.New()
	if err != nil {
		return fmt.Errorf("load fallback data: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tables, ping, closeDB := openRemote(ctx, cfg.DSN(), database.Connect, database.Migrate)
	defer closeDB()

	ids := memstore.SequentialIDs
	if cfg.FallbackIDs == config.IDsUUID {
		ids = memstore.RandomIDs
	}
	svc := service.New(tables, data, service.Options{
		IDs:       ids,
		BlogRetry: &service.RetryPolicy{Attempts: cfg.BlogRetryAttempts, Delay: cfg.BlogRetryDelay},
		Metrics:   service.NewMetrics(reg),
	})

	var responses *cache.ResponseCache
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, response cache disabled", "error", err)
		} else {
			defer client.Close()
			responses = cache.NewResponseCache(client, cfg.CacheTTL)
		}
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		return err
	}

	public := handlers.NewPublic(handlers.PublicConfig{
		Services:   svc,
		Cache:      responses,
		Notifier:   newNotifier(cfg),
		OwnerEmail: cfg.OwnerEmail,
		SMTP: mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		},
		SMTPAllowedHosts: cfg.SMTPAllowedHosts,
	})
	admin := handlers.NewAdmin(svc, responses, uploader, nil)

	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, proxies...)
	defer limiter.Stop()

	r := router.New(router.Options{
		Public:         public,
		Admin:          admin,
		RateLimiter:    limiter,
		AdminTokenHash: cfg.AdminTokenHash,
		EmailToken:     cfg.EmailToken,
		CORSOrigins:    middleware.ParseOrigins(cfg.CORSOrigins),
		Ping:           ping,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "upload_providers", uploader.Providers())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped gracefully")
	return nil
}

// openRemote connects and migrates the remote store. When either step fails
// the API still serves, from fallback data only, and tables is nil.
func openRemote(
	ctx context.Context,
	dsn string,
	connect func(context.Context, string) (*pgxpool.Pool, error),
	migrate func(*pgxpool.Pool) error,
) (*store.Tables, func(context.Context) error, func()) {
	pool, err := connect(ctx, dsn)
	if err != nil {
		slog.Warn("database unavailable, serving fallback data only", "error", err)
		return nil, nil, func() {}
	}
	if err := migrate(pool); err != nil {
		slog.Warn("database migration failed, serving fallback data only", "error", err)
		pool.Close()
		return nil, nil, func() {}
	}
	slog.Info("database connected")
	return store.NewTables(pool), pool.Ping, pool.Close
}

// newUploader chains the configured upload backends. Files fall back to
// inline data URLs when none is configured or all fail.
func newUploader(cfg *config.Config) (*upload.Uploader, error) {
	var backends []upload.Backend
	if cfg.CDNEnabled() {
		backends = append(backends, upload.NewCDN(cfg.CDNUploadURL, cfg.CDNCloudName, cfg.CDNUploadPreset))
	}
	if cfg.S3Enabled() {
		client, err := storage.New(storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 storage: %w", err)
		}
		if client != nil {
			backends = append(backends, upload.NewS3(client))
		}
	}
	return upload.New(backends...), nil
}

// newNotifier returns the client of the send-email endpoint, or nil when
// there is no way to deliver mail. The client presents EMAIL_TOKEN; without
// one it relies on reaching this server over loopback.
func newNotifier(cfg *config.Config) mail.Sender {
	if !cfg.SMTPEnabled() && cfg.EmailEndpoint == "" {
		slog.Warn("email not configured, notifications disabled")
		return nil
	}
	return mail.NewClient(cfg.NotifyEndpoint(), cfg.EmailToken)
}
