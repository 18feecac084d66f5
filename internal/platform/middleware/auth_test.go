// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	"github.com/taibuivan/scribe/internal/platform/respond"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// gatedHandler records whether it ran and which subject it saw.
type gatedHandler struct {
	called  bool
	subject softref.UserID
}

func (handler *gatedHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	handler.called = true
	handler.subject, _ = ctxutil.GetSubject(request.Context())
	writer.WriteHeader(http.StatusOK)
}

func newGate(t *testing.T, now func() time.Time) (*sec.TokenCodec, http.Handler, *gatedHandler) {
	t.Helper()
	codec, err := sec.NewTokenCodec([]byte("gate-secret"), time.Hour, sec.WithClock(now))
	require.NoError(t, err)

	inner := &gatedHandler{}
	return codec, middleware.Authenticate(codec)(inner), inner
}

/*
TestAuthenticate_Accepts binds the verified subject into the context.
*/
func TestAuthenticate_Accepts(t *testing.T) {
	codec, gate, inner := newGate(t, time.Now)

	token, err := codec.Issue(77)
	require.NoError(t, err)

	for _, scheme := range []string{"Bearer", "bearer"} {
		inner.called = false

		request := httptest.NewRequest(http.MethodPost, "/blogs", nil)
		request.Header.Set("Authorization", scheme+" "+token)
		recorder := httptest.NewRecorder()

		gate.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, inner.called)
		assert.Equal(t, softref.UserID(77), inner.subject)
	}
}

/*
TestAuthenticate_Rejects verifies that every failure is a 401 and the handler never runs.
*/
func TestAuthenticate_Rejects(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer, err := sec.NewTokenCodec([]byte("gate-secret"), time.Hour, sec.WithClock(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	expired, err := issuer.Issue(5)
	require.NoError(t, err)

	foreignCodec, err := sec.NewTokenCodec([]byte("other-secret"), time.Hour)
	require.NoError(t, err)
	foreign, err := foreignCodec.Issue(5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"absent", ""},
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"bare_token", "abc.def.ghi"},
		{"empty_token", "Bearer "},
		{"malformed", "Bearer not-a-jwt"},
		{"expired", "Bearer " + expired},
		{"foreign_secret", "Bearer " + foreign},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gate, inner := newGate(t, time.Now)

			request := httptest.NewRequest(http.MethodDelete, "/blogs/1", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			gate.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, inner.called)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHORIZED", body.Code)
			if tt.header != "" && tt.name != "wrong_scheme" && tt.name != "bare_token" && tt.name != "empty_token" {
				bodies = append(bodies, recorder.Body.String())
			}
		})
	}

	// Tampered, expired and foreign-secret assertions look the same to the client
	for _, body := range bodies {
		assert.Equal(t, bodies[0], body)
	}
}
