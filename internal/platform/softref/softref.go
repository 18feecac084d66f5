// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package softref defines the identifiers that cross service boundaries.

Each service owns its own store. When a row in one store points at a row that
lives in another store (a blog's author, a comment's blog), it keeps only the
numeric id of the target. That id is a soft reference:

  - It is never checked for existence when written.
  - It is never cleaned up when the target is deleted.
  - A reference whose target is gone is "dangling" and is a normal, permanent
    state rather than an error.

The author/owner side of every reference is filled from the caller identity
resolved by the identity middleware, never from the request body. That is the
only integrity guarantee this model provides.

Distinct types keep a [UserID] from being passed where a [BlogID] is expected
at compile time, while the wire format stays a plain JSON integer.
*/
package softref

import (
	"fmt"
	"strconv"
)

// UserID references a row in the user service store.
type UserID int64

// BlogID references a row in the blog service store.
type BlogID int64

// CommentID references a row in the comment service store.
type CommentID int64

// # Parsing

// ParseUserID parses a decimal, strictly positive user id.
func ParseUserID(raw string) (UserID, error) {
	id, err := parsePositive(raw)
	return UserID(id), err
}

// ParseBlogID parses a decimal, strictly positive blog id.
func ParseBlogID(raw string) (BlogID, error) {
	id, err := parsePositive(raw)
	return BlogID(id), err
}

// String returns the decimal form used in the token subject.
func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }

// Valid reports whether the id can refer to a stored row.
func (id UserID) Valid() bool { return id > 0 }

func parsePositive(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("softref: %q is not an integer id: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("softref: id must be positive, got %d", id)
	}
	return id, nil
}
