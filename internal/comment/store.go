// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"

	"github.com/taibuivan/scribe/internal/platform/softref"
)

// Repository defines the data access contract for comments.
type Repository interface {
	// ListTopLevel returns the comments on blogID whose ParentID is nil,
	// oldest first. It returns an empty slice, not an error, when none exist.
	ListTopLevel(ctx context.Context, blogID softref.BlogID) ([]*Comment, error)

	// Create inserts the comment and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, comment *Comment) error
}
