// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the repositories.
//
// Table is the schema-qualified Postgres name; Bare is the same table in the
// embedded SQLite database, which has no schemas.
package schema
