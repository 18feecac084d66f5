// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cache defines the read-through cache contract used by services for
// public single-row reads.
//
// The cache is an accelerator only. Services invalidate the entry for a row
// on every update or delete of that row, and treat every cache error as a
// miss. Nothing in the cache is shared between services.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for JSON-serialisable values.
type Cache interface {
	// Get decodes the value at key into dest. The boolean is false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value at key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Noop is the cache used when no Redis URL is configured. Every read misses.
type Noop struct{}

// Get always misses.
func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }

// Set discards the value.
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }

// Delete does nothing.
func (Noop) Delete(context.Context, ...string) error { return nil }
