// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blog implements the blog service: public reads of blog posts and
author-only writes.

# Ownership

A blog's AuthorID is taken from the verified caller when the post is created
and never changes afterwards. Update and delete go through [authz.LoadOwned]:
the post is loaded first (404 if missing) and then compared with the caller
(403 if someone else wrote it).

AuthorID is a soft reference into the user service. It is not checked on
write and survives the deletion of the user it points to.
*/
package blog

import (
	"strconv"
	"time"

	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// # Domain Entities

// Blog is a post written by one user.
type Blog struct {
	ID        softref.BlogID `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	AuthorID  softref.UserID `json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// OwnerID implements [authz.Owned].
func (b *Blog) OwnerID() softref.UserID { return b.AuthorID }

// CreateInput is the client-controlled part of a new post.
// The author is deliberately absent: it comes from the caller identity.
type CreateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateInput holds the fields a partial update may change. Nil means "keep".
type UpdateInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Field names for validation
const (
	FieldTitle   = "title"
	FieldContent = "content"

	maxTitleLength = 255
)

// cacheKey returns the read-cache key for one post.
func cacheKey(id softref.BlogID) string {
	return constants.CachePrefixBlog + strconv.FormatInt(int64(id), 10)
}
