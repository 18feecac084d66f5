// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values shared by the user,
blog and comment services.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Identity: assertion lifetime and transport header.
  - Headers & JSON fields used across middleware and responders.
  - Database schemas owned by each service.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "scribe"
	AppVersion = "0.1.0-dev"
)

// # Service Names

const (
	ServiceUser    = "user-service"
	ServiceBlog    = "blog-service"
	ServiceComment = "comment-service"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds the initial store and cache connection attempts.
	StartupTimeout = 30 * time.Second
)

// # Identity

const (
	// AssertionTTL is the fixed lifetime of an identity assertion.
	// Expiry is the only way an assertion stops being valid.
	AssertionTTL = time.Hour

	// BearerScheme is the Authorization scheme carrying the assertion.
	BearerScheme = "Bearer"
)

// # HTTP Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaUsers    = "users"
	SchemaBlogs    = "blogs"
	SchemaComments = "comments"
)

// # Cache Keys

const (
	CachePrefixBlog = "blog:"
	CachePrefixUser = "user:"
)
