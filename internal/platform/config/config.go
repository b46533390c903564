// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It uses 'caarlos0/env' to map OS environment variables into a strongly-typed
struct with defaults, then checks the rules that depend on several fields
(for example DATABASE_URL is only required for the postgres driver).

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded the configuration is read-only and passed to constructors.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/yomira-docs/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StorageDriver selects the repository implementation: "postgres" or "sqlite".
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/docs.db"`

	// Key-Value store (Redis) for opaque session tokens. Optional.
	RedisURL string `env:"REDIS_URL"`

	// Access-token keys. The private key is only needed to issue tokens.
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`

	// Cross-Origin Resource Sharing: origins ending with this suffix are allowed in production.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"yomira.app"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case constants.DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the %q driver", c.StorageDriver)
		}
	case constants.DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the %q driver", c.StorageDriver)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix returns the origin suffix accepted outside development.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}

// SessionsEnabled reports whether opaque cookie sessions (Redis) are configured.
func (c *Config) SessionsEnabled() bool {
	return c.RedisURL != ""
}
