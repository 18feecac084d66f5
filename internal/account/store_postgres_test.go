//go:build integration

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/account"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/postgres/pgtest"
)

/*
TestPostgresUserRepository exercises the user store against a real database.
*/
func TestPostgresUserRepository(t *testing.T) {
	pool := pgtest.Start(t, "../../data/migrations/user", "user_schema_migrations")
	repository := account.NewPostgresUserRepository(pool)
	ctx := context.Background()

	user := &account.User{Username: "ann", Email: "ann@example.com", PasswordHash: "hash"}
	require.NoError(t, repository.Create(ctx, user))
	assert.Positive(t, int64(user.ID))

	t.Run("unique_email", func(t *testing.T) {
		err := repository.Create(ctx, &account.User{Username: "bob", Email: "ann@example.com", PasswordHash: "h"})
		assert.True(t, apperr.HasCode(err, "CONFLICT"))
	})

	t.Run("find", func(t *testing.T) {
		byEmail, err := repository.FindByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		_, err = repository.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
	})

	t.Run("update", func(t *testing.T) {
		user.Username = "annie"
		require.NoError(t, repository.Update(ctx, user))

		stored, err := repository.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "annie", stored.Username)
		assert.Equal(t, "hash", stored.PasswordHash)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repository.Delete(ctx, user.ID))

		_, err := repository.FindByID(ctx, user.ID)
		assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
		assert.True(t, apperr.HasCode(repository.Delete(ctx, user.ID), "NOT_FOUND"))
	})
}
