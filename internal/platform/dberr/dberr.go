// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies low-level database errors into application errors.
//
// Both storage drivers (pgx and database/sql over SQLite) funnel their errors
// through [Wrap] so that services only ever see [apperr.AppError] values.
package dberr

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/yomira-docs/internal/platform/apperr"
)

// uniqueViolation is the Postgres SQLSTATE for a unique-constraint failure.
const uniqueViolation = "23505"

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is returned when a write hits a unique constraint.
	ErrDuplicate = apperr.AlreadyExists("Resource", "duplicate key")
)

// Wrap inspects a database error and maps it to an [apperr.AppError].
//
// action names the failing operation (e.g. "create_tag") and is kept in the
// cause of internal errors for the server log.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if IsUniqueViolation(err) {
		return ErrDuplicate
	}

	return apperr.Internal(&actionError{action: action, err: err})
}

// IsUniqueViolation reports whether err is a unique-constraint failure from either driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	// modernc.org/sqlite reports "constraint failed: UNIQUE constraint failed: tag.userid, tag.name (2067)".
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }
