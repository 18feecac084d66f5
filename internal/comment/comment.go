// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment implements the comment service: public listing of the
top-level comments on a blog post and authenticated creation.

BlogID, AuthorID and ParentID are soft references. A comment may point at a
post that never existed or was deleted later; that is a normal state and
listing such a post simply returns its comments (or none).

Comments have no update or delete operation.
*/
package comment

import (
	"time"

	"github.com/taibuivan/scribe/internal/platform/softref"
)

// # Domain Entities

// Comment is a remark left by a user on a blog post.
type Comment struct {
	ID        softref.CommentID  `json:"id"`
	Content   string             `json:"content"`
	BlogID    softref.BlogID     `json:"blog_id"`
	AuthorID  softref.UserID     `json:"author_id"`
	ParentID  *softref.CommentID `json:"parent_id"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CreateInput is the client-controlled part of a new comment.
type CreateInput struct {
	Content string         `json:"content"`
	BlogID  softref.BlogID `json:"blog_id"`
}

// Field names for validation
const (
	FieldContent = "content"
	FieldBlogID  = "blog_id"
	FieldPostID  = "post_id"
)
