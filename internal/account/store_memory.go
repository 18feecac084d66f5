// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// MemoryUserRepository is an in-process [UserRepository] for tests and
// scenario runs. Email uniqueness is enforced like the unique constraint of
// the real table.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID softref.UserID
	rows   map[softref.UserID]User
}

// NewMemoryUserRepository returns an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{rows: make(map[softref.UserID]User)}
}

var errDuplicate = apperr.Conflict(resourceName + " already exists")

func (repository *MemoryUserRepository) FindByID(_ context.Context, id softref.UserID) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}
	return &row, nil
}

func (repository *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, row := range repository.rows {
		if row.Email == email {
			return &row, nil
		}
	}
	return nil, apperr.NotFound(resourceName)
}

func (repository *MemoryUserRepository) Create(_ context.Context, u *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.emailTaken(u.Email, 0) {
		return errDuplicate
	}

	repository.nextID++
	now := time.Now()

	u.ID = repository.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	repository.rows[u.ID] = *u
	return nil
}

func (repository *MemoryUserRepository) Update(_ context.Context, u *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	row, ok := repository.rows[u.ID]
	if !ok {
		return apperr.NotFound(resourceName)
	}
	if repository.emailTaken(u.Email, u.ID) {
		return errDuplicate
	}

	row.Username = u.Username
	row.Email = u.Email
	row.PasswordHash = u.PasswordHash
	row.UpdatedAt = time.Now()
	repository.rows[u.ID] = row

	u.UpdatedAt = row.UpdatedAt
	return nil
}

func (repository *MemoryUserRepository) Delete(_ context.Context, id softref.UserID) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound(resourceName)
	}
	delete(repository.rows, id)
	return nil
}

func (repository *MemoryUserRepository) emailTaken(email string, except softref.UserID) bool {
	for id, row := range repository.rows {
		if id != except && row.Email == email {
			return true
		}
	}
	return false
}
