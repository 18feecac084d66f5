// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres provides the managed PostgreSQL connection pool each
// service uses for its own store.
//
// # Startup policy
//
// A store that is unreachable at boot does not stop the process. The pool is
// created lazily, the failed ping is logged, and the service starts listening;
// requests then fail with INTERNAL_ERROR on first store access until the
// database comes back. Callers opt into fail-fast startup with [FailFast].
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scribe/internal/platform/constants"
)

// Opinionated pool settings for a single-service store.
const (
	// maxConns is the maximum number of connections in the pool.
	maxConns = 25
	// minConns is zero so an unreachable database does not spin background dials.
	minConns = 0
	// maxConnLifetime ensures connections are periodically recycled.
	maxConnLifetime = 60 * time.Minute
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// healthCheckPeriod is the frequency of background connection health checks.
	healthCheckPeriod = 1 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// Option adjusts how [NewPool] treats an unreachable database.
type Option func(*poolOptions)

type poolOptions struct {
	failFast bool
}

// FailFast makes [NewPool] return the ping error instead of degrading.
func FailFast(enabled bool) Option {
	return func(options *poolOptions) {
		options.failFast = enabled
	}
}

// NewPool creates a PostgreSQL connection pool and checks connectivity.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - dsn: A libpq-compatible connection string or postgres:// URL.
//   - logger: Structured logger for pool-level events.
//
// # Returns
//   - The pool, even when the database is unreachable (unless [FailFast]).
//   - An error only for an unusable DSN, or an unreachable database in
//     fail-fast mode.
func NewPool(ctx context.Context, dsn string, logger *slog.Logger, opts ...Option) (*pgxpool.Pool, error) {
	options := poolOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	// Apply pool tuning parameters.
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	// AfterConnect is called each time a new physical connection is established.
	poolConfig.AfterConnect = func(ctx context.Context, connection *pgx.Conn) error {
		// Set a per-connection statement timeout to avoid runaway queries.
		timeoutQuery := fmt.Sprintf("SET statement_timeout = '%ds'", int(constants.GlobalRequestTimeout.Seconds()))
		_, err := connection.Exec(ctx, timeoutQuery)
		return err
	}

	// pgxpool dials lazily, so construction itself does not need the database.
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		if options.failFast {
			pool.Close()
			return nil, err
		}

		logger.Error("postgres_unreachable_at_startup",
			slog.Any("error", err),
			slog.String("policy", "listen_and_fail_per_request"),
		)
		return pool, nil
	}

	stats := pool.Stat()
	logger.Info("postgres pool connected",
		slog.Int("max_conns", int(stats.MaxConns())),
		slog.Int("total_conns", int(stats.TotalConns())),
	)

	return pool, nil
}

// Ping verifies that the PostgreSQL connection pool is healthy.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}
