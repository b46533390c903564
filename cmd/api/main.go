// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the document tag HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open storage (PostgreSQL + migrations, or embedded SQLite).
//  4. Connect to Redis when cookie sessions are enabled.
//  5. Build the credential verifier.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/yomira-docs/internal/api"
	"github.com/taibuivan/yomira-docs/internal/docs/tag"
	"github.com/taibuivan/yomira-docs/internal/platform/config"
	"github.com/taibuivan/yomira-docs/internal/platform/constants"
	"github.com/taibuivan/yomira-docs/internal/platform/migration"
	pgstore "github.com/taibuivan/yomira-docs/internal/platform/postgres"
	redisstore "github.com/taibuivan/yomira-docs/internal/platform/redis"
	"github.com/taibuivan/yomira-docs/internal/platform/sec"
	"github.com/taibuivan/yomira-docs/internal/platform/sqlite"
	"github.com/taibuivan/yomira-docs/internal/users/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
		slog.Bool("sessions", cfg.SessionsEnabled()),
	)

	// Startup deadline so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Background work (rate-limit sweeping) stops with this context.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	health := api.HealthDependencies{DatabaseName: cfg.StorageDriver}
	var tagRepository tag.Repository

	switch cfg.StorageDriver {
	case constants.DriverPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		tagRepository = tag.NewPostgresRepository(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }

	case constants.DriverSQLite:
		db, err := sqlite.Open(startupCtx, cfg.SQLitePath, log)
		must(log, err, "open sqlite")
		defer func() {
			log.Info("closing sqlite database")
			if cerr := db.Close(); cerr != nil {
				log.Error("sqlite close error", slog.Any("error", cerr))
			}
		}()

		tagRepository = tag.NewSQLiteRepository(db)
		health.CheckDatabase = func(ctx context.Context) error { return sqlite.Ping(ctx, db) }
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var sessionStore session.Store
	if cfg.SessionsEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		sessionStore = session.NewRedisRepository(rdb)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Credentials ────────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token service")

	verifier := session.NewVerifier(tokenService, sessionStore)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	tagService := tag.NewService(tagRepository, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Tag:       tag.NewHandler(tagService),
	}

	server := api.NewServer(appCtx, cfg, log, verifier, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("closing redis client")
	if err := client.Close(); err != nil {
		log.Error("redis close error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Limited to startup wiring. After startup, errors are returned and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
