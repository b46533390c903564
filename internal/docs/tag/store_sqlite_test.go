// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-docs/internal/docs/tag"
	"github.com/taibuivan/yomira-docs/internal/platform/dberr"
	"github.com/taibuivan/yomira-docs/internal/platform/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "docs.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertDocument(t *testing.T, db *sql.DB, id, ownerID string, deleted bool, tagIDs ...string) {
	t.Helper()
	ctx := context.Background()
	now := sqlite.FormatTime(time.Now())

	var deletedAt any
	if deleted {
		deletedAt = now
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO document (id, userid, title, createdat, deletedat) VALUES (?, ?, ?, ?, ?)`,
		id, ownerID, "doc "+id, now, deletedAt)
	require.NoError(t, err)

	for _, tagID := range tagIDs {
		_, err := db.ExecContext(ctx, `INSERT INTO documenttag (documentid, tagid) VALUES (?, ?)`, id, tagID)
		require.NoError(t, err)
	}
}

func newTag(id, ownerID, name, color string) *tag.Tag {
	now := time.Date(2026, 5, 1, 10, 0, 0, 123, time.UTC)
	return &tag.Tag{ID: id, UserID: ownerID, Name: name, Color: color, CreatedAt: now, UpdatedAt: now}
}

func TestSQLiteRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := tag.NewSQLiteRepository(openTestDB(t))

	created := newTag("t1", alice, "invoices", "#ff0000")
	require.NoError(t, repo.Create(ctx, created))

	byID, err := repo.FindByID(ctx, alice, "t1")
	require.NoError(t, err)
	assert.Equal(t, "invoices", byID.Name)
	assert.Equal(t, "#ff0000", byID.Color)
	assert.Equal(t, alice, byID.UserID)
	assert.True(t, created.CreatedAt.Equal(byID.CreatedAt))

	byName, err := repo.FindByName(ctx, alice, "invoices")
	require.NoError(t, err)
	assert.Equal(t, "t1", byName.ID)

	// Lookups are scoped by owner.
	_, err = repo.FindByID(ctx, bob, "t1")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	_, err = repo.FindByName(ctx, bob, "invoices")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestSQLiteRepository_UniqueName(t *testing.T) {
	ctx := context.Background()
	repo := tag.NewSQLiteRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, newTag("t1", alice, "invoices", "")))

	err := repo.Create(ctx, newTag("t2", alice, "invoices", ""))
	assert.ErrorIs(t, err, dberr.ErrDuplicate)

	require.NoError(t, repo.Create(ctx, newTag("t3", bob, "invoices", "")))

	// Renaming onto a taken name hits the same key.
	require.NoError(t, repo.Create(ctx, newTag("t4", alice, "receipts", "")))
	renamed := newTag("t4", alice, "invoices", "")
	assert.ErrorIs(t, repo.Update(ctx, renamed), dberr.ErrDuplicate)
}

func TestSQLiteRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := tag.NewSQLiteRepository(openTestDB(t))

	empty, err := repo.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.Create(ctx, newTag("t1", alice, "zeta", "")))
	require.NoError(t, repo.Create(ctx, newTag("t2", alice, "alpha", "#000000")))
	require.NoError(t, repo.Create(ctx, newTag("t3", bob, "beta", "")))

	tags, err := repo.ListByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, "zeta", tags[1].Name)
}

func TestSQLiteRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := tag.NewSQLiteRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, newTag("t1", alice, "old", "#111111")))

	changed := newTag("t1", alice, "new", "#222222")
	changed.UpdatedAt = changed.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, changed))

	got, err := repo.FindByID(ctx, alice, "t1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "#222222", got.Color)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	foreign := newTag("t1", bob, "hijack", "")
	assert.ErrorIs(t, repo.Update(ctx, foreign), dberr.ErrNotFound)
}

func TestSQLiteRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := tag.NewSQLiteRepository(db)

	require.NoError(t, repo.Create(ctx, newTag("t1", alice, "invoices", "")))
	insertDocument(t, db, "d1", alice, false, "t1")

	assert.ErrorIs(t, repo.Delete(ctx, bob, "t1"), dberr.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, alice, "t1"))
	assert.ErrorIs(t, repo.Delete(ctx, alice, "t1"), dberr.ErrNotFound)

	var links, documents int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM documenttag`).Scan(&links))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM document`).Scan(&documents))
	assert.Zero(t, links)
	assert.Equal(t, 1, documents)
}

func TestSQLiteRepository_Stats(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := tag.NewSQLiteRepository(db)

	require.NoError(t, repo.Create(ctx, newTag("t1", alice, "invoices", "#ff0000")))
	require.NoError(t, repo.Create(ctx, newTag("t2", alice, "archive", "")))
	require.NoError(t, repo.Create(ctx, newTag("t3", alice, "unused", "")))
	require.NoError(t, repo.Create(ctx, newTag("t4", bob, "bob-only", "")))

	insertDocument(t, db, "d1", alice, false, "t1", "t2")
	insertDocument(t, db, "d2", alice, false, "t1")
	insertDocument(t, db, "d3", alice, true, "t1", "t2")
	insertDocument(t, db, "d4", bob, false, "t4")

	stats, err := repo.Stats(ctx, alice)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	counts := make(map[string]int, len(stats))
	for _, s := range stats {
		counts[s.Name] = s.Count
	}

	// d3 is soft-deleted and is not counted.
	assert.Equal(t, 2, counts["invoices"])
	assert.Equal(t, 1, counts["archive"])
	assert.Equal(t, 0, counts["unused"])

	assert.Equal(t, "archive", stats[0].Name)
	assert.Equal(t, "invoices", stats[1].Name)
	assert.Equal(t, "#ff0000", stats[1].Color)
	assert.Equal(t, "unused", stats[2].Name)
}
