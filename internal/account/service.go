// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/cache"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/softref"
	"github.com/taibuivan/scribe/internal/platform/validate"
	"github.com/taibuivan/scribe/pkg/pointer"
)

// # Contracts

// TokenIssuer signs identity assertions for a user id.
type TokenIssuer interface {
	Issue(subject softref.UserID) (string, error)
}

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
// Both cases share one message so that login does not reveal which emails exist.
var ErrInvalidCredentials = apperr.BadRequest("Invalid credentials")

// ErrEmailTaken is returned when registering an email that already has an account.
var ErrEmailTaken = apperr.Conflict("User already exists")

// # Service Layer

// Service implements the user account use cases.
type Service struct {
	users    UserRepository
	issuer   TokenIssuer
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewService constructs a new [Service]. A nil cache disables read caching.
func NewService(users UserRepository, issuer TokenIssuer, readCache cache.Cache, cacheTTL time.Duration, logger *slog.Logger) *Service {
	if readCache == nil {
		readCache = cache.Noop{}
	}
	return &Service{
		users:    users,
		issuer:   issuer,
		cache:    readCache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// # Registration & Login

/*
Register creates an account and returns an assertion for it.

Returns:
  - string: a signed assertion whose subject is the new user
  - error: CONFLICT if the email is registered, VALIDATION_ERROR on bad input
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, maxUsernameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, maxEmailLength).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, minPasswordLength)
	if err := validator.Err(); err != nil {
		return "", err
	}

	// Uniqueness is checked up front for a clean message; the unique
	// constraint still catches concurrent registrations.
	_, err := service.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !apperr.HasCode(err, "NOT_FOUND") {
		return "", fmt.Errorf("account_service_register_lookup_failed: %w", err)
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := service.users.Create(ctx, user); err != nil {
		if apperr.HasCode(err, "CONFLICT") {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("account_service_register_failed: %w", err)
	}

	token, err := service.issuer.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("account_service_issue_failed: %w", err)
	}

	service.logger.Info("user_registered", slog.Int64("user_id", int64(user.ID)))
	return token, nil
}

/*
Login checks credentials and returns an assertion for the account.

Returns:
  - string: a signed assertion
  - error: ErrInvalidCredentials for an unknown email or wrong password
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return "", err
	}

	user, err := service.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("account_service_login_lookup_failed: %w", err)
	}

	// bcrypt comparison is constant-time.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := service.issuer.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("account_service_issue_failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.Int64("user_id", int64(user.ID)))
	return token, nil
}

// # Profiles

// Get returns the public profile of a user, served from the read cache when possible.
func (service *Service) Get(ctx context.Context, id softref.UserID) (*User, error) {
	key := cacheKey(id)

	var cached User
	hit, err := service.cache.Get(ctx, key, &cached)
	if err != nil {
		service.logger.Warn("user_cache_read_failed", slog.Int64("user_id", int64(id)), slog.Any("error", err))
	}
	if hit {
		return &cached, nil
	}

	user, err := service.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_failed: %w", err)
	}

	if err := service.cache.Set(ctx, key, user, service.cacheTTL); err != nil {
		service.logger.Warn("user_cache_write_failed", slog.Int64("user_id", int64(id)), slog.Any("error", err))
	}
	return user, nil
}

/*
Update applies a partial change to the account id.

Description: The caller must hold a valid assertion, but is not required to
be the account being changed. A new password is re-hashed before storage.

Returns:
  - *User: the updated account
  - error: NOT_FOUND, CONFLICT on a taken email, VALIDATION_ERROR
*/
func (service *Service) Update(ctx context.Context, caller, id softref.UserID, input UpdateInput) (*User, error) {
	user, err := service.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	validator := &validate.Validator{}
	if input.Username != nil {
		validator.
			Required(FieldUsername, *input.Username).
			MaxLen(FieldUsername, *input.Username, maxUsernameLength)
	}
	if input.Email != nil {
		validator.
			Required(FieldEmail, *input.Email).
			Email(FieldEmail, *input.Email).
			MaxLen(FieldEmail, *input.Email, maxEmailLength)
	}
	if input.Password != nil {
		validator.MinLen(FieldPassword, *input.Password, minPasswordLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user.Username = pointer.Fallback(input.Username, user.Username)
	user.Email = pointer.Fallback(input.Email, user.Email)

	if input.Password != nil {
		hash, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := service.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}
	service.invalidate(ctx, id)

	service.logger.Info("user_updated",
		slog.Int64("user_id", int64(id)),
		slog.Int64("caller_id", int64(caller)),
	)
	return user, nil
}

// Delete removes the account id. Content that references it is left as is.
func (service *Service) Delete(ctx context.Context, caller, id softref.UserID) error {
	if err := service.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}
	service.invalidate(ctx, id)

	service.logger.Warn("user_deleted",
		slog.Int64("user_id", int64(id)),
		slog.Int64("caller_id", int64(caller)),
	)
	return nil
}

func (service *Service) invalidate(ctx context.Context, id softref.UserID) {
	if err := service.cache.Delete(ctx, cacheKey(id)); err != nil {
		service.logger.Warn("user_cache_invalidate_failed", slog.Int64("user_id", int64(id)), slog.Any("error", err))
	}
}
