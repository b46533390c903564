// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/yomira-docs/internal/docs/tag"
	"github.com/taibuivan/yomira-docs/internal/platform/dberr"
)

// memoryRepository is an in-memory [tag.Repository] that enforces the
// (owner, name) unique key like the real stores do.
type memoryRepository struct {
	mu     sync.Mutex
	tags   map[string]tag.Tag
	counts map[string]int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		tags:   make(map[string]tag.Tag),
		counts: make(map[string]int),
	}
}

func (repo *memoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*tag.Tag, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	tags := make([]*tag.Tag, 0)
	for _, t := range repo.tags {
		if t.UserID == ownerID {
			copied := t
			tags = append(tags, &copied)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (repo *memoryRepository) FindByName(_ context.Context, ownerID, name string) (*tag.Tag, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, t := range repo.tags {
		if t.UserID == ownerID && t.Name == name {
			copied := t
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) FindByID(_ context.Context, ownerID, id string) (*tag.Tag, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	t, ok := repo.tags[id]
	if !ok || t.UserID != ownerID {
		return nil, dberr.ErrNotFound
	}
	return &t, nil
}

func (repo *memoryRepository) Create(_ context.Context, t *tag.Tag) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.nameTaken(t.UserID, t.Name, t.ID) {
		return dberr.ErrDuplicate
	}
	repo.tags[t.ID] = *t
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, t *tag.Tag) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.tags[t.ID]
	if !ok || existing.UserID != t.UserID {
		return dberr.ErrNotFound
	}
	if repo.nameTaken(t.UserID, t.Name, t.ID) {
		return dberr.ErrDuplicate
	}
	repo.tags[t.ID] = *t
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, ownerID, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	t, ok := repo.tags[id]
	if !ok || t.UserID != ownerID {
		return dberr.ErrNotFound
	}
	delete(repo.tags, id)
	delete(repo.counts, id)
	return nil
}

func (repo *memoryRepository) Stats(ctx context.Context, ownerID string) ([]*tag.TagStat, error) {
	tags, _ := repo.ListByOwner(ctx, ownerID)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	stats := make([]*tag.TagStat, 0, len(tags))
	for _, t := range tags {
		stats = append(stats, &tag.TagStat{ID: t.ID, Name: t.Name, Color: t.Color, Count: repo.counts[t.ID]})
	}
	return stats, nil
}

// setCount fixes the live document count reported for a tag.
func (repo *memoryRepository) setCount(id string, count int) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.counts[id] = count
}

func (repo *memoryRepository) size() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.tags)
}

func (repo *memoryRepository) nameTaken(ownerID, name, exceptID string) bool {
	for id, t := range repo.tags {
		if id != exceptID && t.UserID == ownerID && t.Name == name {
			return true
		}
	}
	return false
}
