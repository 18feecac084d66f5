//go:build integration

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	redisstore "github.com/taibuivan/scribe/internal/platform/redis"
)

type entry struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

/*
TestCache_RoundTrip stores, reads, expires and deletes JSON values in a real Redis.
*/
func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := redisstore.NewClient(ctx, "redis://"+endpoint+"/0", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, redisstore.Ping(ctx, client))

	cache := redisstore.NewCache(client)

	var got entry
	hit, err := cache.Get(ctx, "blog:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "blog:1", entry{ID: 1, Title: "cached"}, time.Minute))

	hit, err = cache.Get(ctx, "blog:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, entry{ID: 1, Title: "cached"}, got)

	require.NoError(t, cache.Delete(ctx, "blog:1", "blog:missing"))
	hit, err = cache.Get(ctx, "blog:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "blog:2", entry{ID: 2}, time.Second))
	assert.Eventually(t, func() bool {
		hit, err := cache.Get(ctx, "blog:2", &got)
		return err == nil && !hit
	}, 5*time.Second, 100*time.Millisecond)
}
