// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements the user service: registration, login, public
profiles and account maintenance.

It is the only issuer of identity assertions. Registration and login both
answer with a freshly issued assertion; every other service only verifies it.

# Deletion

Deleting a user removes the account row and nothing else. Blogs and comments
written by the user keep their author id as a dangling soft reference.
*/
package account

import (
	"strconv"
	"time"

	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           softref.UserID `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// RegisterInput holds the data required to create an account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateInput holds the fields a partial update may change. Nil means "keep".
type UpdateInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// TokenResponse is the body returned by registration and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	maxUsernameLength = 100
	maxEmailLength    = 255
	minPasswordLength = 8
)

func cacheKey(id softref.UserID) string {
	return constants.CachePrefixUser + strconv.FormatInt(int64(id), 10)
}
