// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/scribe/internal/platform/authz"
	"github.com/taibuivan/scribe/internal/platform/cache"
	"github.com/taibuivan/scribe/internal/platform/softref"
	"github.com/taibuivan/scribe/internal/platform/validate"
	"github.com/taibuivan/scribe/pkg/pagination"
	"github.com/taibuivan/scribe/pkg/pointer"
)

// # Service Layer

// Service orchestrates blog reads and author-only writes.
type Service struct {
	repository Repository
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewService constructs a new [Service]. A nil cache disables read caching.
func NewService(repository Repository, readCache cache.Cache, cacheTTL time.Duration, logger *slog.Logger) *Service {
	if readCache == nil {
		readCache = cache.Noop{}
	}
	return &Service{
		repository: repository,
		cache:      readCache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// # Reads

// List returns one page of posts, newest first.
func (service *Service) List(ctx context.Context, params pagination.Params) (pagination.Page[*Blog], error) {
	blogs, total, err := service.repository.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return pagination.Page[*Blog]{}, fmt.Errorf("blog_service_list_failed: %w", err)
	}
	return pagination.NewPage(params, total, blogs), nil
}

/*
Get returns a single post.

Description: Serves from the read cache when possible. Cache failures are
logged and treated as a miss.

Returns:
  - *Blog: the post
  - error: NOT_FOUND if no post has this id
*/
func (service *Service) Get(ctx context.Context, id softref.BlogID) (*Blog, error) {
	key := cacheKey(id)

	var cached Blog
	hit, err := service.cache.Get(ctx, key, &cached)
	if err != nil {
		service.logger.Warn("blog_cache_read_failed", slog.Int64("blog_id", int64(id)), slog.Any("error", err))
	}
	if hit {
		return &cached, nil
	}

	b, err := service.repository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog_service_get_failed: %w", err)
	}

	if err := service.cache.Set(ctx, key, b, service.cacheTTL); err != nil {
		service.logger.Warn("blog_cache_write_failed", slog.Int64("blog_id", int64(id)), slog.Any("error", err))
	}
	return b, nil
}

// # Writes

/*
Create stores a new post written by author.

The author always comes from the verified caller; the input carries no
author field at all.
*/
func (service *Service) Create(ctx context.Context, author softref.UserID, input CreateInput) (*Blog, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, maxTitleLength).
		Required(FieldContent, input.Content)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	b := &Blog{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: author,
	}
	if err := service.repository.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("blog_service_create_failed: %w", err)
	}

	service.logger.Info("blog_created",
		slog.Int64("blog_id", int64(b.ID)),
		slog.Int64("author_id", int64(author)),
	)
	return b, nil
}

/*
Update applies a partial change to a post owned by caller.

Returns:
  - *Blog: the updated post, AuthorID unchanged
  - error: NOT_FOUND, FORBIDDEN for a non-author, or VALIDATION_ERROR
*/
func (service *Service) Update(ctx context.Context, caller softref.UserID, id softref.BlogID, input UpdateInput) (*Blog, error) {
	b, err := authz.LoadOwned(ctx, caller, service.loader(id))
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.
			Required(FieldTitle, *input.Title).
			MaxLen(FieldTitle, *input.Title, maxTitleLength)
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// AuthorID is not part of UpdateInput and stays as loaded.
	b.Title = pointer.Fallback(input.Title, b.Title)
	b.Content = pointer.Fallback(input.Content, b.Content)

	if err := service.repository.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("blog_service_update_failed: %w", err)
	}
	service.invalidate(ctx, id)

	service.logger.Info("blog_updated", slog.Int64("blog_id", int64(id)))
	return b, nil
}

// Delete removes a post owned by caller. Comments on it are not touched.
func (service *Service) Delete(ctx context.Context, caller softref.UserID, id softref.BlogID) error {
	if _, err := authz.LoadOwned(ctx, caller, service.loader(id)); err != nil {
		return err
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("blog_service_delete_failed: %w", err)
	}
	service.invalidate(ctx, id)

	service.logger.Warn("blog_deleted", slog.Int64("blog_id", int64(id)))
	return nil
}

// loader reads straight from the repository; ownership is never decided on
// cached data.
func (service *Service) loader(id softref.BlogID) func(context.Context) (*Blog, error) {
	return func(ctx context.Context) (*Blog, error) {
		return service.repository.Get(ctx, id)
	}
}

func (service *Service) invalidate(ctx context.Context, id softref.BlogID) {
	if err := service.cache.Delete(ctx, cacheKey(id)); err != nil {
		service.logger.Warn("blog_cache_invalidate_failed", slog.Int64("blog_id", int64(id)), slog.Any("error", err))
	}
}
