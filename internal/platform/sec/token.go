// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the cryptographic primitives shared by the services:
// password hashing and the identity assertion codec.
//
// # Trust model
//
// The user service issues assertions; the blog and comment services verify
// them locally with the same symmetric secret, without calling back to the
// issuer. A verifier holding a different secret cannot tell that apart from
// a tampered token, and both fail as [ErrInvalidSignature].
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/scribe/internal/platform/softref"
)

// Verification failures. Every one of them means "reject the request"; they
// are distinct only so that tests and logs can tell them apart.
var (
	ErrMalformed        = errors.New("sec: malformed assertion")
	ErrInvalidSignature = errors.New("sec: invalid assertion signature")
	ErrExpired          = errors.New("sec: assertion expired")
)

// AssertionClaims is the payload of an identity assertion.
//
// UserID duplicates the subject as a JSON number so the payload keeps the
// `{"id": n}` shape existing clients decode.
type AssertionClaims struct {
	jwt.RegisteredClaims

	UserID softref.UserID `json:"id"`
}

// TokenCodec issues and verifies HS256-signed identity assertions.
//
// It holds no mutable state after construction and is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// CodecOption customises a [TokenCodec].
type CodecOption func(*TokenCodec)

// WithClock replaces the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) CodecOption {
	return func(codec *TokenCodec) {
		codec.now = now
	}
}

// NewTokenCodec creates a codec bound to the shared signing secret.
//
// # Parameters
//   - secret: the out-of-band secret, identical across all services.
//   - ttl: lifetime of issued assertions.
func NewTokenCodec(secret []byte, ttl time.Duration, opts ...CodecOption) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("sec: assertion ttl must be positive, got %s", ttl)
	}

	codec := &TokenCodec{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(codec)
	}
	return codec, nil
}

// Issue signs an assertion for subject with iat = now and exp = now + ttl.
//
// Both claims are whole seconds: now is truncated before the ttl is added, so
// exp - iat is exactly ttl.
func (codec *TokenCodec) Issue(subject softref.UserID) (string, error) {
	if !subject.Valid() {
		return "", fmt.Errorf("sec: cannot issue assertion for subject %d", subject)
	}

	issuedAt := codec.now().Truncate(time.Second)
	claims := AssertionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(codec.ttl)),
		},
		UserID: subject,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign assertion: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of an assertion and returns its subject.
//
// The signature is checked before the claims, so a foreign or tampered token
// reports [ErrInvalidSignature] even if it has also expired. Expiry is an
// exact comparison: the assertion is rejected once now >= exp.
func (codec *TokenCodec) Verify(assertion string) (softref.UserID, error) {
	claims := &AssertionClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(codec.now),
	)

	_, err := parser.ParseWithClaims(assertion, claims, func(*jwt.Token) (interface{}, error) {
		return codec.secret, nil
	})
	if err != nil {
		return 0, classify(err)
	}

	subject, err := softref.ParseUserID(claims.Subject)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if claims.UserID != subject {
		return 0, fmt.Errorf("%w: subject and id claims disagree", ErrMalformed)
	}

	return subject, nil
}

// classify maps jwt parser errors onto the three verification failures.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
