// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taibuivan/yomira-docs/internal/platform/apperr"
	"github.com/taibuivan/yomira-docs/internal/platform/dberr"
	"github.com/taibuivan/yomira-docs/internal/platform/validate"
	"github.com/taibuivan/yomira-docs/pkg/textnorm"
	"github.com/taibuivan/yomira-docs/pkg/uuid"
)

// resourceName prefixes NotFound and AlreadyExists messages.
const resourceName = "Tag"

// Service implements the tag business rules on top of a [Repository].
//
// Every method takes the authenticated owner explicitly; a tag is never
// visible to, or modifiable by, another user.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a tag [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

/*
ListTags returns every tag of the owner, ordered by name.

An owner without tags gets an empty, non-nil slice.
*/
func (service *Service) ListTags(ctx context.Context, ownerID string) ([]*Tag, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return service.repo.ListByOwner(ctx, ownerID)
}

/*
GetTagStats returns every tag of the owner with the number of live
(non-deleted) documents it is attached to.
*/
func (service *Service) GetTagStats(ctx context.Context, ownerID string) ([]*TagStat, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return service.repo.Stats(ctx, ownerID)
}

/*
CreateTag creates a tag for the owner and returns its new identifier.

Description: The name is trimmed and NFC-normalized before validation.
Color is optional. A second tag with the same name for the same owner is
rejected with ALREADY_EXISTS; the storage unique key backs the pre-check
when two creates race.
*/
func (service *Service) CreateTag(ctx context.Context, ownerID string, input CreateInput) (string, error) {
	if err := requireOwner(ownerID); err != nil {
		return "", err
	}

	name := textnorm.Label(input.Name)
	color := textnorm.Label(input.Color)

	validator := &validate.Validator{}
	validator.Required(FieldName, name)
	if !validator.HasErrors() {
		validator.Length(FieldName, name, NameMinLength, NameMaxLength)
	}
	if color != "" {
		validator.HexColor(FieldColor, color)
	}

	if err := validator.Err(); err != nil {
		return "", err
	}

	// Uniqueness pre-check
	_, err := service.repo.FindByName(ctx, ownerID, name)
	if err == nil {
		return "", apperr.AlreadyExists(resourceName, name)
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return "", err
	}

	now := service.now().UTC()
	tag := &Tag{
		ID:        uuid.New(),
		UserID:    ownerID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.Create(ctx, tag); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return "", apperr.AlreadyExists(resourceName, name)
		}
		return "", err
	}

	service.logger.Info("tag_created",
		slog.String("tag_id", tag.ID),
		slog.String("user_id", ownerID),
		slog.String("name", tag.Name),
	)

	return tag.ID, nil
}

/*
UpdateTag renames and/or recolors one of the owner's tags.

Description: Empty fields leave the stored value unchanged. Present fields
follow the create rules. Renaming onto another tag's name is refused by the
storage unique key and reported as ALREADY_EXISTS.
*/
func (service *Service) UpdateTag(ctx context.Context, ownerID, id string, input UpdateInput) (string, error) {
	if err := requireOwner(ownerID); err != nil {
		return "", err
	}

	name := textnorm.Label(input.Name)
	color := textnorm.Label(input.Color)

	validator := &validate.Validator{}
	if name != "" {
		validator.Length(FieldName, name, NameMinLength, NameMaxLength)
	}
	if color != "" {
		validator.HexColor(FieldColor, color)
	}

	if err := validator.Err(); err != nil {
		return "", err
	}

	tag, err := service.findOwned(ctx, ownerID, id)
	if err != nil {
		return "", err
	}

	if name != "" {
		tag.Name = name
	}
	if color != "" {
		tag.Color = color
	}
	tag.UpdatedAt = service.now().UTC()

	if err := service.repo.Update(ctx, tag); err != nil {
		switch {
		case errors.Is(err, dberr.ErrDuplicate):
			return "", apperr.AlreadyExists(resourceName, tag.Name)
		case errors.Is(err, dberr.ErrNotFound):
			return "", apperr.NotFoundID(resourceName, id)
		}
		return "", err
	}

	service.logger.Info("tag_updated",
		slog.String("tag_id", tag.ID),
		slog.String("user_id", ownerID),
	)

	return tag.ID, nil
}

/*
DeleteTag removes one of the owner's tags.

Description: The tag is hard-deleted and detached from every document.
The documents themselves are untouched.
*/
func (service *Service) DeleteTag(ctx context.Context, ownerID, id string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if _, err := service.findOwned(ctx, ownerID, id); err != nil {
		return err
	}

	if err := service.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFoundID(resourceName, id)
		}
		return err
	}

	service.logger.Warn("tag_deleted",
		slog.String("tag_id", id),
		slog.String("user_id", ownerID),
	)

	return nil
}

// # Internal Helpers

// findOwned loads a tag of the owner; tags of other users are reported as missing.
func (service *Service) findOwned(ctx context.Context, ownerID, id string) (*Tag, error) {
	tag, err := service.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFoundID(resourceName, id)
		}
		return nil, err
	}
	return tag, nil
}

func requireOwner(ownerID string) error {
	if ownerID == "" {
		return apperr.Forbidden("Authentication required")
	}
	return nil
}
