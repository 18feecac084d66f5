// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/authz"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

type post struct{ author softref.UserID }

func (p *post) OwnerID() softref.UserID { return p.author }

/*
TestRequireOwner compares caller and stored owner.
*/
func TestRequireOwner(t *testing.T) {
	assert.NoError(t, authz.RequireOwner(1, &post{author: 1}))

	err := authz.RequireOwner(2, &post{author: 1})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "FORBIDDEN"))
}

/*
TestLoadOwned_Order verifies that existence is checked before ownership.
*/
func TestLoadOwned_Order(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_row_is_not_found_for_everyone", func(t *testing.T) {
		load := func(context.Context) (*post, error) { return nil, apperr.NotFound("Blog") }

		_, err := authz.LoadOwned(ctx, 99, load)
		assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
	})

	t.Run("foreign_row_is_forbidden", func(t *testing.T) {
		load := func(context.Context) (*post, error) { return &post{author: 1}, nil }

		resource, err := authz.LoadOwned(ctx, 2, load)
		assert.Nil(t, resource)
		assert.True(t, apperr.HasCode(err, "FORBIDDEN"))
	})

	t.Run("own_row_proceeds", func(t *testing.T) {
		load := func(context.Context) (*post, error) { return &post{author: 1}, nil }

		resource, err := authz.LoadOwned(ctx, 1, load)
		require.NoError(t, err)
		assert.Equal(t, softref.UserID(1), resource.OwnerID())
	})
}
