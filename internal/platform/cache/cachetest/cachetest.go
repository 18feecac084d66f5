// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cachetest provides a recording [cache.Cache] for service tests.
package cachetest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// ErrUnavailable is returned by every operation once [Recorder.Fail] is set.
var ErrUnavailable = errors.New("cachetest: cache unavailable")

// Recorder keeps JSON-encoded entries in memory and counts operations.
type Recorder struct {
	mu      sync.Mutex
	entries map[string][]byte
	fail    bool

	Hits    int
	Misses  int
	Deletes []string
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{entries: make(map[string][]byte)}
}

// Fail makes every following call return [ErrUnavailable].
func (r *Recorder) Fail(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = fail
}

// Has reports whether key currently holds a value.
func (r *Recorder) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[key]
	return ok
}

func (r *Recorder) Get(_ context.Context, key string, dest any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail {
		return false, ErrUnavailable
	}

	raw, ok := r.entries[key]
	if !ok {
		r.Misses++
		return false, nil
	}

	r.Hits++
	return true, json.Unmarshal(raw, dest)
}

func (r *Recorder) Set(_ context.Context, key string, value any, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail {
		return ErrUnavailable
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.entries[key] = raw
	return nil
}

func (r *Recorder) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail {
		return ErrUnavailable
	}

	for _, key := range keys {
		delete(r.entries, key)
		r.Deletes = append(r.Deletes, key)
	}
	return nil
}
