// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/scribe/internal/platform/softref"
	"github.com/taibuivan/scribe/internal/platform/validate"
)

// Service orchestrates comment listing and creation.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListByBlog returns the top-level comments on blogID, oldest first.
// The blog itself is not looked up; an unknown id yields an empty list.
func (service *Service) ListByBlog(ctx context.Context, blogID softref.BlogID) ([]*Comment, error) {
	comments, err := service.repository.ListTopLevel(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("comment_service_list_failed: %w", err)
	}
	return comments, nil
}

/*
Create stores a top-level comment written by author.

Description: BlogID is recorded as given without checking that the post
exists. ParentID is always nil on creation.
*/
func (service *Service) Create(ctx context.Context, author softref.UserID, input CreateInput) (*Comment, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldContent, input.Content).
		Positive(FieldBlogID, int64(input.BlogID))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c := &Comment{
		Content:  input.Content,
		BlogID:   input.BlogID,
		AuthorID: author,
	}
	if err := service.repository.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("comment_service_create_failed: %w", err)
	}

	service.logger.Info("comment_created",
		slog.Int64("comment_id", int64(c.ID)),
		slog.Int64("blog_id", int64(c.BlogID)),
		slog.Int64("author_id", int64(author)),
	)
	return c, nil
}
