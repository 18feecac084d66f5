// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles service-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. In development a
local '.env' file is read first with 'joho/godotenv'; real environment
variables always win over the file.

Usage:

	cfg, err := config.Load(config.Defaults{
	    Service:       constants.ServiceBlog,
	    Port:          "8002",
	    MigrationPath: "./data/migrations/blog",
	})

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, token codec) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The three services read the same variable names. JWT_SECRET must hold the
same value in all of them, otherwise assertions issued by the user service
are rejected elsewhere as if they had been tampered with.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for one service process.
type Config struct {

	// Service is the process name; it is set by the caller, not the environment.
	Service string

	// Server settings
	ServerPort  string `env:"PORT"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL), one store per service
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to this service's SQL migrations.
	MigrationPath string `env:"MIGRATION_PATH"`

	// DBFailFast stops the process when the store is unreachable at startup.
	// The default keeps listening and fails requests until the store is back.
	DBFailFast bool `env:"DB_FAIL_FAST" envDefault:"false"`

	// JWTSecret signs (user service) and verifies (all services) assertions.
	JWTSecret string `env:"JWT_SECRET,required,unset"`

	// Optional read cache (Redis). Empty disables caching.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Cross-Origin Resource Sharing; "*" allows any origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Defaults carries the per-service values that differ between processes.
type Defaults struct {
	Service       string
	Port          string
	MigrationPath string
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load(defaults Defaults) (*Config, error) {

	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	// Pre-filled fields act as defaults for variables that are not set.
	cfg := &Config{
		Service:       defaults.Service,
		ServerPort:    defaults.Port,
		MigrationPath: defaults.MigrationPath,
	}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("config: JWT_SECRET must not be blank")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsOrigin implements the CORS origin policy.
//
// Development allows every origin; otherwise only CORS_ORIGINS entries match.
func (c *Config) AllowsOrigin(origin string) bool {
	if c.IsDevelopment() {
		return true
	}
	for _, allowed := range c.CORSOrigins {
		allowed = strings.TrimSpace(allowed)
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
