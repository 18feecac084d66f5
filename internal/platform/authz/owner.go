// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authz implements the ownership rule applied to mutations of
// author-owned resources.
//
// # Order of checks
//
// The target is loaded by primary key first and only then compared with the
// caller. A missing row is reported as NOT_FOUND to everyone, and an existing
// row owned by someone else is FORBIDDEN. This order reveals to a non-owner
// that the row exists; it is the documented behavior of the public API.
package authz

import (
	"context"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// Owned is implemented by resources that store the id of their author.
type Owned interface {
	OwnerID() softref.UserID
}

// ErrNotOwner is returned when the caller is not the resource's author.
var ErrNotOwner = apperr.Forbidden("Only the author can modify this resource")

// RequireOwner allows the mutation only when caller equals the stored owner.
func RequireOwner(caller softref.UserID, resource Owned) error {
	if resource.OwnerID() != caller {
		return ErrNotOwner
	}
	return nil
}

// LoadOwned loads a resource and checks that caller owns it.
//
// Errors from load (typically NOT_FOUND) are returned unchanged, before any
// ownership comparison takes place.
func LoadOwned[T Owned](ctx context.Context, caller softref.UserID, load func(context.Context) (T, error)) (T, error) {
	resource, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := RequireOwner(caller, resource); err != nil {
		var zero T
		return zero, err
	}
	return resource, nil
}
