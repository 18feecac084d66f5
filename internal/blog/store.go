// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"

	"github.com/taibuivan/scribe/internal/platform/softref"
)

// Repository defines the data access contract for blog posts.
//
// Implementations return [apperr.NotFound] for missing rows so that services
// can pass errors through unchanged.
type Repository interface {
	// List returns one page of posts, newest first, and the total count.
	List(ctx context.Context, limit, offset int) ([]*Blog, int, error)

	// Get returns the post with the given id.
	Get(ctx context.Context, id softref.BlogID) (*Blog, error)

	// Create inserts the post and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, blog *Blog) error

	// Update persists Title and Content and refreshes UpdatedAt.
	// AuthorID is never written.
	Update(ctx context.Context, blog *Blog) error

	// Delete removes the post. Comments pointing at it are left untouched.
	Delete(ctx context.Context, id softref.BlogID) error
}
