// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"github.com/taibuivan/scribe/internal/platform/softref"
)

// UserRepository defines the data access contract for accounts.
//
// Missing rows are reported as [apperr.NotFound] and duplicate emails as
// [apperr.Conflict].
type UserRepository interface {
	// FindByID returns the account with the given id.
	FindByID(ctx context.Context, id softref.UserID) (*User, error)

	// FindByEmail returns the account registered with email (exact match).
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts the account and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, user *User) error

	// Update persists username, email and password hash.
	Update(ctx context.Context, user *User) error

	// Delete removes the account row only.
	Delete(ctx context.Context, id softref.UserID) error
}
