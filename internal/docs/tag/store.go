// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// Repository is the storage contract of the tag service.
//
// Every lookup is scoped by owner. Missing rows surface as dberr.ErrNotFound,
// unique-key collisions on (owner, name) as dberr.ErrDuplicate.
type Repository interface {

	// ListByOwner returns the owner's tags ordered by name.
	ListByOwner(ctx context.Context, ownerID string) ([]*Tag, error)

	// FindByName returns the owner's tag with exactly this name.
	FindByName(ctx context.Context, ownerID, name string) (*Tag, error)

	// FindByID returns the owner's tag with this id.
	FindByID(ctx context.Context, ownerID, id string) (*Tag, error)

	// Create inserts a new tag. ID and timestamps are set by the caller.
	Create(ctx context.Context, tag *Tag) error

	// Update persists Name, Color and UpdatedAt of an existing tag.
	Update(ctx context.Context, tag *Tag) error

	// Delete removes the owner's tag and its document associations.
	Delete(ctx context.Context, ownerID, id string) error

	// Stats returns every tag of the owner with its live document count, ordered by name.
	Stats(ctx context.Context, ownerID string) ([]*TagStat, error)
}
