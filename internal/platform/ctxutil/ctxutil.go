// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/scribe/internal/platform/ctxkey"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity

// WithSubject returns a new context carrying the verified caller id.
//
// Only the identity middleware should call this; everything downstream treats
// the value as the single trustworthy answer to "who is calling".
func WithSubject(ctx context.Context, subject softref.UserID) context.Context {
	return context.WithValue(ctx, ctxkey.KeySubject, subject)
}

// GetSubject retrieves the verified caller id from the context.
// The boolean is false on routes that were not gated by the identity middleware.
func GetSubject(ctx context.Context) (softref.UserID, bool) {
	subject, ok := ctx.Value(ctxkey.KeySubject).(softref.UserID)
	return subject, ok
}
