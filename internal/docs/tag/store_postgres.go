// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-docs/internal/platform/database/schema"
	"github.com/taibuivan/yomira-docs/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed [Repository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	pgSelectColumns = fmt.Sprintf(`%s, %s, %s, %s, %s, %s`,
		schema.DocsTag.ID, schema.DocsTag.UserID, schema.DocsTag.Name,
		schema.DocsTag.Color, schema.DocsTag.CreatedAt, schema.DocsTag.UpdatedAt)

	pgListQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		pgSelectColumns, schema.DocsTag.Table, schema.DocsTag.UserID,
		schema.DocsTag.Name, schema.DocsTag.ID)

	pgFindByNameQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		pgSelectColumns, schema.DocsTag.Table, schema.DocsTag.UserID, schema.DocsTag.Name)

	pgFindByIDQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		pgSelectColumns, schema.DocsTag.Table, schema.DocsTag.UserID, schema.DocsTag.ID)

	pgInsertQuery = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.DocsTag.Table, pgSelectColumns)

	pgUpdateQuery = fmt.Sprintf(`UPDATE %s SET %s = $3, %s = $4, %s = $5 WHERE %s = $1 AND %s = $2`,
		schema.DocsTag.Table, schema.DocsTag.Name, schema.DocsTag.Color, schema.DocsTag.UpdatedAt,
		schema.DocsTag.UserID, schema.DocsTag.ID)

	pgDeleteQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.DocsTag.Table, schema.DocsTag.UserID, schema.DocsTag.ID)

	// Soft-deleted documents are excluded by the join condition so that
	// tags without live documents still report a zero count.
	pgStatsQuery = fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, COUNT(d.%s)
		FROM %s t
		LEFT JOIN %s dt ON dt.%s = t.%s
		LEFT JOIN %s d ON d.%s = dt.%s AND d.%s IS NULL
		WHERE t.%s = $1
		GROUP BY t.%s, t.%s, t.%s
		ORDER BY t.%s ASC, t.%s ASC
	`,
		schema.DocsTag.ID, schema.DocsTag.Name, schema.DocsTag.Color, schema.DocsDocument.ID,
		schema.DocsTag.Table,
		schema.DocsDocumentTag.Table, schema.DocsDocumentTag.TagID, schema.DocsTag.ID,
		schema.DocsDocument.Table, schema.DocsDocument.ID, schema.DocsDocumentTag.DocumentID, schema.DocsDocument.DeletedAt,
		schema.DocsTag.UserID,
		schema.DocsTag.ID, schema.DocsTag.Name, schema.DocsTag.Color,
		schema.DocsTag.Name, schema.DocsTag.ID,
	)
)

func scanPostgresTag(row pgx.Row) (*Tag, error) {
	t := &Tag{}
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListByOwner implements [Repository].
func (repository *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Tag, error) {
	rows, err := repository.db.Query(ctx, pgListQuery, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t, err := scanPostgresTag(rows)
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
func (repository *PostgresRepository) FindByName(ctx context.Context, ownerID, name string) (*Tag, error) {
	t, err := scanPostgresTag(repository.db.QueryRow(ctx, pgFindByNameQuery, ownerID, name))
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_name")
	}
	return t, nil
}

// FindByID implements [Repository].
func (repository *PostgresRepository) FindByID(ctx context.Context, ownerID, id string) (*Tag, error) {
	t, err := scanPostgresTag(repository.db.QueryRow(ctx, pgFindByIDQuery, ownerID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_id")
	}
	return t, nil
}

// Create implements [Repository].
func (repository *PostgresRepository) Create(ctx context.Context, t *Tag) error {
	_, err := repository.db.Exec(ctx, pgInsertQuery, t.ID, t.UserID, t.Name, t.Color, t.CreatedAt, t.UpdatedAt)
	return dberr.Wrap(err, "create_tag")
}

// Update implements [Repository].
func (repository *PostgresRepository) Update(ctx context.Context, t *Tag) error {
	cmd, err := repository.db.Exec(ctx, pgUpdateQuery, t.UserID, t.ID, t.Name, t.Color, t.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_tag")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete implements [Repository]. Document links go with the ON DELETE CASCADE foreign key.
func (repository *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := repository.db.Exec(ctx, pgDeleteQuery, ownerID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Stats implements [Repository].
func (repository *PostgresRepository) Stats(ctx context.Context, ownerID string) ([]*TagStat, error) {
	rows, err := repository.db.Query(ctx, pgStatsQuery, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "tag_stats")
	}
	defer rows.Close()

	stats := make([]*TagStat, 0)
	for rows.Next() {
		s := &TagStat{}
		var count int64
		if err := rows.Scan(&s.ID, &s.Name, &s.Color, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_stat")
		}
		s.Count = int(count)
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "tag_stats")
	}
	return stats, nil
}
