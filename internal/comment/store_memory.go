// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/scribe/internal/platform/softref"
)

// MemoryRepository is an in-process [Repository] for tests and scenario runs.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID softref.CommentID
	rows   []Comment
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (repository *MemoryRepository) ListTopLevel(_ context.Context, blogID softref.BlogID) ([]*Comment, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	comments := []*Comment{}
	for _, row := range repository.rows {
		if row.BlogID == blogID && row.ParentID == nil {
			c := row
			comments = append(comments, &c)
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (repository *MemoryRepository) Create(_ context.Context, c *Comment) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	now := time.Now()

	c.ID = repository.nextID
	c.CreatedAt = now
	c.UpdatedAt = now
	repository.rows = append(repository.rows, *c)
	return nil
}
