// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bootstrap is the shared composition root of the user, blog and
comment processes.

# Startup Sequence

 1. Initialize structured logger.
 2. Load configuration from environment variables.
 3. Connect to PostgreSQL (pgxpool).
 4. Connect to Redis when REDIS_URL is set.
 5. Run this service's migrations (idempotent).
 6. Build the token codec from JWT_SECRET.
 7. Wire HTTP handlers through the service's Mount function.
 8. Start HTTP server with graceful shutdown.

An unreachable store or a failed migration is logged and the process keeps
listening; requests that need the store then fail with 500. DB_FAIL_FAST=true
turns both into fatal startup errors.
*/
package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/scribe/internal/api"
	"github.com/taibuivan/scribe/internal/platform/cache"
	"github.com/taibuivan/scribe/internal/platform/config"
	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	"github.com/taibuivan/scribe/internal/platform/migration"
	pgstore "github.com/taibuivan/scribe/internal/platform/postgres"
	redisstore "github.com/taibuivan/scribe/internal/platform/redis"
	"github.com/taibuivan/scribe/internal/platform/sec"
)

// Service describes one process.
type Service struct {
	Name          string
	Port          string
	MigrationPath string

	// VersionTable is this service's golang-migrate version table.
	VersionTable string

	// Mount builds the domain routers from the shared dependencies.
	Mount func(deps Dependencies) []api.Route
}

// Dependencies are the shared objects handed to [Service.Mount].
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Cache  cache.Cache
	Codec  *sec.TokenCodec

	// Authenticate is the identity gate for mutating routes.
	Authenticate func(http.Handler) http.Handler
}

// NewLogger returns the JSON logger tagged with the application and service name.
func NewLogger(out io.Writer, service string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", constants.AppName),
		slog.String("service", service),
	)
}

// Run starts the service and blocks until SIGINT or SIGTERM.
func Run(svc Service) {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := NewLogger(os.Stdout, svc.Name, false)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load(config.Defaults{
		Service:       svc.Name,
		Port:          svc.Port,
		MigrationPath: svc.MigrationPath,
	})
	must(log, err, "load configuration")

	if cfg.Debug {
		log = NewLogger(os.Stdout, svc.Name, true)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("db_fail_fast", cfg.DBFailFast),
		slog.Bool("cache_enabled", cfg.RedisURL != ""),
	)

	// Bound the startup phase so misconfiguration is caught quickly rather
	// than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log, pgstore.FailFast(cfg.DBFailFast))
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var (
		readCache  cache.Cache = cache.Noop{}
		checkCache func(context.Context) error
	)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("redis_disabled", slog.Any("error", err))
		} else {
			readCache = redisstore.NewCache(rdb)
			checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
			defer closeRedis(log, rdb)
		}
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, svc.VersionTable, log); err != nil {
		if cfg.DBFailFast {
			must(log, err, "run migrations")
		}
		log.Error("migration_skipped", slog.Any("error", err))
	}

	// ── 6. Token Codec ────────────────────────────────────────────────────
	codec, err := sec.NewTokenCodec([]byte(cfg.JWTSecret), constants.AssertionTTL)
	must(log, err, "initialize token codec")

	// ── 7. Health & Domain Wiring ─────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    checkCache,
	}, log)

	routes := svc.Mount(Dependencies{
		Config:       cfg,
		Logger:       log,
		Pool:         pool,
		Cache:        readCache,
		Codec:        codec,
		Authenticate: middleware.Authenticate(codec),
	})

	server := api.NewServer(cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Routes:    routes,
	})

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
		return
	}

	log.Info("server stopped cleanly")
}

func closeRedis(log *slog.Logger, rdb *goredis.Client) {
	log.Info("closing redis client")
	if err := rdb.Close(); err != nil {
		log.Error("redis close error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
