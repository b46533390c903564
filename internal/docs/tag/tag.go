// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag implements per-user document tags: listing, usage statistics,
// creation, rename/recolor and deletion.
//
// # Architecture
//
//   - tag.go: entities and field rules.
//   - store.go: the [Repository] contract, with Postgres and SQLite implementations.
//   - service.go: validation, ownership and uniqueness rules.
//   - http.go: the chi routes mounted under /tag.
package tag

import "time"

// Tag is a user-defined label with a display color, attachable to documents.
//
// A tag belongs to exactly one user; (UserID, Name) is unique.
type Tag struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TagStat is a read-only projection of a tag with the number of live
// documents currently carrying it.
type TagStat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// CreateInput carries the fields of a create request. Color may be empty.
type CreateInput struct {
	Name  string
	Color string
}

// UpdateInput carries the fields of an update request.
// An empty field leaves the stored value unchanged.
type UpdateInput struct {
	Name  string
	Color string
}

// Field names used in validation details and request bodies.
const (
	FieldName  = "name"
	FieldColor = "color"
)

// Name length bounds, counted in runes.
const (
	NameMinLength = 1
	NameMaxLength = 36
)
