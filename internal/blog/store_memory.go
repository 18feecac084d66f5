// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// MemoryRepository is an in-process [Repository] used by tests and local
// scenario runs. It follows the same ordering and error contract as
// [PostgresRepository].
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID softref.BlogID
	rows   map[softref.BlogID]Blog
	now    func() time.Time
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[softref.BlogID]Blog),
		now:  time.Now,
	}
}

func (repository *MemoryRepository) List(_ context.Context, limit, offset int) ([]*Blog, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	all := make([]Blog, 0, len(repository.rows))
	for _, row := range repository.rows {
		all = append(all, row)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []*Blog{}, total, nil
	}

	end := min(offset+limit, total)
	page := make([]*Blog, 0, end-offset)
	for i := offset; i < end; i++ {
		row := all[i]
		page = append(page, &row)
	}
	return page, total, nil
}

func (repository *MemoryRepository) Get(_ context.Context, id softref.BlogID) (*Blog, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}
	return &row, nil
}

func (repository *MemoryRepository) Create(_ context.Context, b *Blog) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	now := repository.now()

	b.ID = repository.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	repository.rows[b.ID] = *b
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, b *Blog) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	row, ok := repository.rows[b.ID]
	if !ok {
		return apperr.NotFound(resourceName)
	}

	row.Title = b.Title
	row.Content = b.Content
	row.UpdatedAt = repository.now()
	repository.rows[b.ID] = row

	b.UpdatedAt = row.UpdatedAt
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id softref.BlogID) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound(resourceName)
	}
	delete(repository.rows, id)
	return nil
}
