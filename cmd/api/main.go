// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

// Command api is the entry point for the InnoHub HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Bootstrap the first super_admin account (idempotent).
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

	"github.com/innohub/api/internal/admin"
	"github.com/innohub/api/internal/api"
	"github.com/innohub/api/internal/content/event"
	"github.com/innohub/api/internal/content/feature"
	"github.com/innohub/api/internal/content/hero"
	"github.com/innohub/api/internal/content/team"
	"github.com/innohub/api/internal/content/testimonial"
	"github.com/innohub/api/internal/content/timeline"
	"github.com/innohub/api/internal/content/upload"
	"github.com/innohub/api/internal/platform/cache"
	"github.com/innohub/api/internal/platform/config"
	"github.com/innohub/api/internal/platform/constants"
	"github.com/innohub/api/internal/platform/migration"
	pgstore "github.com/innohub/api/internal/platform/postgres"
	redisstore "github.com/innohub/api/internal/platform/redis"
	"github.com/innohub/api/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[InnoHub] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
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

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

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
	accountRepository := admin.NewPostgresRepository(pool)
	accountService := admin.NewService(accountRepository, jwtSvc, log)
	accountHandler := admin.NewHandler(accountService)

	if cfg.HasBootstrapAdmin() {
		must(log, accountService.Bootstrap(startupCtx,
			cfg.BootstrapAdminName,
			cfg.BootstrapAdminEmail,
			cfg.BootstrapAdminPassword,
		), "bootstrap super admin")
	}

	contentCache := cache.NewStore(rdb, log)

	heroHandler := hero.NewHandler(hero.NewService(hero.NewPostgresRepository(pool), contentCache, log))
	featureHandler := feature.NewHandler(feature.NewService(feature.NewPostgresRepository(pool), contentCache, log))
	eventHandler := event.NewHandler(event.NewService(event.NewPostgresRepository(pool), contentCache, log))
	teamHandler := team.NewHandler(team.NewService(team.NewPostgresRepository(pool), contentCache, log))
	testimonialHandler := testimonial.NewHandler(testimonial.NewService(testimonial.NewPostgresRepository(pool), contentCache, log))
	timelineHandler := timeline.NewHandler(timeline.NewService(timeline.NewPostgresRepository(pool), contentCache, log))

	uploadHandler := upload.NewHandler(upload.NewRelay(cfg.ImageHostURL, cfg.ImageHostAPIKey, log))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Admin:       accountHandler,
		BanChecker:  accountRepository,
		Hero:        heroHandler,
		Feature:     featureHandler,
		Event:       eventHandler,
		Team:        teamHandler,
		Testimonial: testimonialHandler,
		Timeline:    timelineHandler,
		Upload:      uploadHandler,
	}

	server := api.NewServer(cfg, log, jwtSvc, handlers)

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
