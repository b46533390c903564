// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens the embedded SQLite database used by the "sqlite"
// storage driver (single-node deployments, local development and repository tests).
//
// The schema is embedded and applied on every open; all statements are idempotent.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const (
	maxOpenConns = 4
	maxIdleConns = 2
	pingTimeout  = 2 * time.Second
)

// Open creates (if needed) and opens the SQLite database at path.
//
// It configures WAL mode and foreign keys, then applies the embedded schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	// Pragmas in the DSN apply to every pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return db, nil
}

// Ping verifies that the database answers.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

// FormatTime renders t the way timestamps are stored (UTC RFC 3339 with nanoseconds).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses a stored timestamp.
func ParseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
