// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered identifiers for stored entities.

It generates Version 7 values: sortable by creation time, B-tree friendly in
PostgreSQL, and rendered in lowercase hex with hyphens so they satisfy the
[a-z0-9-]+ route pattern used for entity paths.
*/
package uuid

import (
	"regexp"

	"github.com/google/uuid"
)

// pathSafe matches identifiers accepted in entity URL paths.
var pathSafe = regexp.MustCompile(`^[a-z0-9-]+$`)

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// IsPathSafe reports whether id only uses lowercase letters, digits and hyphens.
func IsPathSafe(id string) bool {
	return pathSafe.MatchString(id)
}
