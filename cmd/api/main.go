// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

// Command api is the entry point for the Atelier HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Seed allow-listed admin accounts.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelierhq/atelier/internal/api"
	"github.com/atelierhq/atelier/internal/auth"
	"github.com/atelierhq/atelier/internal/core/about"
	"github.com/atelierhq/atelier/internal/core/blog"
	"github.com/atelierhq/atelier/internal/core/contact"
	"github.com/atelierhq/atelier/internal/core/exhibition"
	"github.com/atelierhq/atelier/internal/core/gallery"
	"github.com/atelierhq/atelier/internal/platform/cache"
	"github.com/atelierhq/atelier/internal/platform/config"
	"github.com/atelierhq/atelier/internal/platform/constants"
	"github.com/atelierhq/atelier/internal/platform/migration"
	pgstore "github.com/atelierhq/atelier/internal/platform/postgres"
	redisstore "github.com/atelierhq/atelier/internal/platform/redis"
	"github.com/atelierhq/atelier/internal/platform/sec"
	"github.com/atelierhq/atelier/internal/platform/storage"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "atelier"))
	slog.SetDefault(log)

	log.Info("[Atelier] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "atelier"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Platform Services ──────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	objects, err := storage.NewDiskStorage(cfg.UploadDir, cfg.UploadBaseURL, log)
	must(log, err, "initialize object storage")

	pageCache := cache.NewPageCache(rdb, log)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc, cfg.AdminEmails, log)
	authHandler := auth.NewHandler(authService, !cfg.IsDevelopment())

	// Seed accounts for allow-listed admins that have no row yet.
	must(log, authService.EnsureAdmins(startupCtx, cfg.AdminInitialPassword), "ensure admin accounts")

	exhibitionService := exhibition.NewService(exhibition.NewPostgresRepository(pool), objects, pageCache, log)
	exhibitionHandler := exhibition.NewHandler(exhibitionService, pageCache)

	galleryService := gallery.NewService(gallery.NewPostgresRepository(pool), objects, pageCache, log)
	galleryHandler := gallery.NewHandler(galleryService, pageCache)

	blogService := blog.NewService(blog.NewPostgresRepository(pool), objects, pageCache, log)
	blogHandler := blog.NewHandler(blogService, pageCache)

	aboutService := about.NewService(about.NewPostgresRepository(pool), objects, pageCache, log)
	aboutHandler := about.NewHandler(aboutService, pageCache)

	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	contactHandler := contact.NewHandler(contactService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Revalidate: api.NewRevalidateHandler(cfg.RevalidateSecret, pageCache, log),
		Auth:       authHandler,
		Exhibition: exhibitionHandler,
		Gallery:    galleryHandler,
		Blog:       blogHandler,
		About:      aboutHandler,
		Contact:    contactHandler,
	}

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
