// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/respond"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// TokenVerifier resolves an identity assertion into the caller id.
//
// [sec.TokenCodec] is the production implementation; tests inject stubs.
type TokenVerifier interface {
	Verify(assertion string) (softref.UserID, error)
}

// Authenticate gates a route behind a valid identity assertion.
//
// Mount it only on mutating routes; public reads must not pass through it.
//
// # Flow
//  1. Require 'Authorization: Bearer <assertion>'. Anything else is 401.
//  2. Verify the assertion locally via [TokenVerifier]. Any failure is 401.
//  3. Bind the resolved subject id into the request context.
//
// The downstream handler never runs on rejection. Every rejection carries the
// same body, so a malformed, expired, tampered or foreign-secret assertion is
// indistinguishable to the client.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Scheme Extraction ──────────────────────────────────────────
			assertion, ok := bearerToken(request.Header.Get(constants.HeaderAuthorization))
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Local Verification ─────────────────────────────────────────
			subject, err := verifier.Verify(assertion)
			if err != nil {
				ctxutil.GetLogger(request.Context()).Debug("assertion_rejected", slog.String("reason", err.Error()))
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSubject(request.Context(), subject)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.Int64("subject_id", int64(subject))))

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// bearerToken extracts the assertion from an Authorization header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
