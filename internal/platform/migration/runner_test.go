// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-docs/internal/platform/migration"
)

/*
TestToPgx5DSN checks the scheme rewrite for golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/docs", "pgx5://u:p@db:5432/docs"},
		{"postgresql://u@db/docs?sslmode=disable", "pgx5://u@db/docs?sslmode=disable"},
		{"pgx5://u@db/docs", "pgx5://u@db/docs"},
		{"host=db user=u dbname=docs", "host=db user=u dbname=docs"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
		})
	}
}
