// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Applyn server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"applyn/internal/cache"
	"applyn/internal/config"
	"applyn/internal/database"
	"applyn/internal/handlers"
	"applyn/internal/middleware"
	"applyn/internal/router"
	"applyn/internal/session"
	"applyn/internal/storage"
	"applyn/internal/store"
)

func main() {
	// Structured logger — text output, debug level everywhere for now.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis (sessions + screens cache).
	redisClient, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Session store backed by Redis. Outside development, session cookies
	// are marked Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(redisClient, secureCookies)

	// Data stores.
	userStore := store.NewUserStore(db)
	appStore := store.NewAppStore(db)
	buildStore := store.NewBuildStore(db)
	pushStore := store.NewPushStore(db)
	ticketStore := store.NewTicketStore(db)

	// Connect to S3-compatible object storage (optional — the server
	// works without it, minus icon uploads and artifact downloads).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3BucketAssets, cfg.S3BucketArtifacts, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"assets_bucket", cfg.S3BucketAssets,
			"artifacts_bucket", cfg.S3BucketArtifacts,
		)
	} else {
		slog.Warn("s3 storage not configured — uploads and artifact downloads disabled")
	}

	// Screens cache for the public preview endpoints.
	screensCache := cache.NewScreensCache(redisClient, cache.DefaultScreensTTL)

	// Login rate limiter: 10 attempts per IP per minute.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer loginLimiter.Stop()

	// Handler groups.
	h := router.Handlers{
		Auth:      handlers.NewAuth(sessionStore, userStore),
		Apps:      handlers.NewApps(appStore, screensCache, storageClient),
		Screens:   handlers.NewScreens(appStore, screensCache),
		Templates: handlers.NewTemplates(),
		Builds:    handlers.NewBuilds(appStore, buildStore, storageClient),
		Push:      handlers.NewPush(appStore, pushStore),
		Tickets:   handlers.NewTickets(ticketStore),
		Preview:   handlers.NewPreview(appStore, screensCache, cfg.PreviewBaseURL),
		Metrics:   handlers.NewMetrics(userStore, appStore, buildStore, ticketStore),
	}

	// Chi router with all middleware and routes.
	r := router.New(sessionStore, loginLimiter, h)

	// HTTP server with sensible timeouts. Editor saves carry up to 2 MB
	// of screen JSON; nothing here waits on slow upstreams.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
