// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taibuivan/yomira-docs/internal/platform/database/schema"
	"github.com/taibuivan/yomira-docs/internal/platform/dberr"
	"github.com/taibuivan/yomira-docs/internal/platform/sqlite"
)

// SQLiteRepository implements [Repository] on the embedded SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed [Repository].
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var (
	liteSelectColumns = fmt.Sprintf(`%s, %s, %s, %s, %s, %s`,
		schema.DocsTag.ID, schema.DocsTag.UserID, schema.DocsTag.Name,
		schema.DocsTag.Color, schema.DocsTag.CreatedAt, schema.DocsTag.UpdatedAt)

	liteListQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC, %s ASC`,
		liteSelectColumns, schema.DocsTag.Bare, schema.DocsTag.UserID,
		schema.DocsTag.Name, schema.DocsTag.ID)

	liteFindByNameQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = ?`,
		liteSelectColumns, schema.DocsTag.Bare, schema.DocsTag.UserID, schema.DocsTag.Name)

	liteFindByIDQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = ?`,
		liteSelectColumns, schema.DocsTag.Bare, schema.DocsTag.UserID, schema.DocsTag.ID)

	liteInsertQuery = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)`,
		schema.DocsTag.Bare, liteSelectColumns)

	liteUpdateQuery = fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ?, %s = ? WHERE %s = ? AND %s = ?`,
		schema.DocsTag.Bare, schema.DocsTag.Name, schema.DocsTag.Color, schema.DocsTag.UpdatedAt,
		schema.DocsTag.UserID, schema.DocsTag.ID)

	liteDeleteQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s = ?`,
		schema.DocsTag.Bare, schema.DocsTag.UserID, schema.DocsTag.ID)

	liteStatsQuery = fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, COUNT(d.%s)
		FROM %s t
		LEFT JOIN %s dt ON dt.%s = t.%s
		LEFT JOIN %s d ON d.%s = dt.%s AND d.%s IS NULL
		WHERE t.%s = ?
		GROUP BY t.%s, t.%s, t.%s
		ORDER BY t.%s ASC, t.%s ASC
	`,
		schema.DocsTag.ID, schema.DocsTag.Name, schema.DocsTag.Color, schema.DocsDocument.ID,
		schema.DocsTag.Bare,
		schema.DocsDocumentTag.Bare, schema.DocsDocumentTag.TagID, schema.DocsTag.ID,
		schema.DocsDocument.Bare, schema.DocsDocument.ID, schema.DocsDocumentTag.DocumentID, schema.DocsDocument.DeletedAt,
		schema.DocsTag.UserID,
		schema.DocsTag.ID, schema.DocsTag.Name, schema.DocsTag.Color,
		schema.DocsTag.Name, schema.DocsTag.ID,
	)
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTag(row rowScanner) (*Tag, error) {
	t := &Tag{}
	var createdAt, updatedAt string

	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if t.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = sqlite.ParseTime(updatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// ListByOwner implements [Repository].
func (repository *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Tag, error) {
	rows, err := repository.db.QueryContext(ctx, liteListQuery, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t, err := scanSQLiteTag(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	return tags, nil
}

// FindByName implements [Repository].
func (repository *SQLiteRepository) FindByName(ctx context.Context, ownerID, name string) (*Tag, error) {
	t, err := scanSQLiteTag(repository.db.QueryRowContext(ctx, liteFindByNameQuery, ownerID, name))
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_name")
	}
	return t, nil
}

// FindByID implements [Repository].
func (repository *SQLiteRepository) FindByID(ctx context.Context, ownerID, id string) (*Tag, error) {
	t, err := scanSQLiteTag(repository.db.QueryRowContext(ctx, liteFindByIDQuery, ownerID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_id")
	}
	return t, nil
}

// Create implements [Repository].
func (repository *SQLiteRepository) Create(ctx context.Context, t *Tag) error {
	_, err := repository.db.ExecContext(ctx, liteInsertQuery,
		t.ID, t.UserID, t.Name, t.Color, sqlite.FormatTime(t.CreatedAt), sqlite.FormatTime(t.UpdatedAt))
	return dberr.Wrap(err, "create_tag")
}

// Update implements [Repository].
func (repository *SQLiteRepository) Update(ctx context.Context, t *Tag) error {
	result, err := repository.db.ExecContext(ctx, liteUpdateQuery,
		t.Name, t.Color, sqlite.FormatTime(t.UpdatedAt), t.UserID, t.ID)
	if err != nil {
		return dberr.Wrap(err, "update_tag")
	}
	return requireAffected(result, "update_tag")
}

// Delete implements [Repository]. Document links go with the ON DELETE CASCADE foreign key.
func (repository *SQLiteRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := repository.db.ExecContext(ctx, liteDeleteQuery, ownerID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}
	return requireAffected(result, "delete_tag")
}

// Stats implements [Repository].
func (repository *SQLiteRepository) Stats(ctx context.Context, ownerID string) ([]*TagStat, error) {
	rows, err := repository.db.QueryContext(ctx, liteStatsQuery, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "tag_stats")
	}
	defer rows.Close()

	stats := make([]*TagStat, 0)
	for rows.Next() {
		s := &TagStat{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Color, &s.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_stat")
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "tag_stats")
	}
	return stats, nil
}

func requireAffected(result sql.Result, action string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
