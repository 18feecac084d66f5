// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/blog"
	"github.com/taibuivan/scribe/internal/platform/cache"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

type blogAPI struct {
	t      *testing.T
	router http.Handler
	codec  *sec.TokenCodec
}

func newBlogAPI(t *testing.T) *blogAPI {
	t.Helper()
	codec, err := sec.NewTokenCodec([]byte("blog-test-secret"), time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := blog.NewService(blog.NewMemoryRepository(), cache.Noop{}, time.Minute, logger)

	return &blogAPI{
		t:      t,
		router: blog.NewHandler(service).Routes(middleware.Authenticate(codec)),
		codec:  codec,
	}
}

func (api *blogAPI) do(method, path, body string, caller softref.UserID) *httptest.ResponseRecorder {
	api.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if caller != 0 {
		token, err := api.codec.Issue(caller)
		require.NoError(api.t, err)
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

/*
TestHandler_CreateIgnoresBodyAuthor sets author_id from the assertion only.
*/
func TestHandler_CreateIgnoresBodyAuthor(t *testing.T) {
	api := newBlogAPI(t)

	recorder := api.do(http.MethodPost, "/", `{"title":"T","content":"C","author_id":999}`, 3)
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := decode[blog.Blog](t, recorder)
	assert.EqualValues(t, 3, created.AuthorID)
}

/*
TestHandler_WritesRequireIdentity returns 401 without an assertion.
*/
func TestHandler_WritesRequireIdentity(t *testing.T) {
	api := newBlogAPI(t)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/", `{"title":"T","content":"C"}`, 0).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPut, "/1", `{"title":"T"}`, 0).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodDelete, "/1", "", 0).Code)

	page := decode[map[string]any](t, api.do(http.MethodGet, "/", "", 0))
	assert.EqualValues(t, 0, page["total"])
}

/*
TestHandler_ReadsArePublic serves list and get without an assertion.
*/
func TestHandler_ReadsArePublic(t *testing.T) {
	api := newBlogAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/", `{"title":"T","content":"C"}`, 1).Code)

	recorder := api.do(http.MethodGet, "/1", "", 0)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "T", decode[blog.Blog](t, recorder).Title)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/42", "", 0).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/abc", "", 0).Code)
}

/*
TestHandler_OwnerOnlyWrites covers 404, 403 and the owner's 200 responses.
*/
func TestHandler_OwnerOnlyWrites(t *testing.T) {
	api := newBlogAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/", `{"title":"A","content":"C"}`, 1).Code)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, "/9", `{"title":"B"}`, 2).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPut, "/1", `{"title":"B"}`, 2).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodDelete, "/1", "", 2).Code)

	recorder := api.do(http.MethodPut, "/1", `{"title":"B","author_id":2}`, 1)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decode[blog.Blog](t, recorder)
	assert.Equal(t, "B", updated.Title)
	assert.EqualValues(t, 1, updated.AuthorID)

	recorder = api.do(http.MethodDelete, "/1", "", 1)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Blog deleted", decode[map[string]string](t, recorder)["message"])
}

/*
TestHandler_InvalidBody maps undecodable JSON to 400.
*/
func TestHandler_InvalidBody(t *testing.T) {
	api := newBlogAPI(t)

	recorder := api.do(http.MethodPost, "/", `{"title":`, 1)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[map[string]any](t, recorder)["code"])
}

/*
TestHandler_ListHugePage returns an empty page for an out-of-range page number.
*/
func TestHandler_ListHugePage(t *testing.T) {
	api := newBlogAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/", `{"title":"T","content":"C"}`, 1).Code)

	recorder := api.do(http.MethodGet, "/?page=9223372036854775807&limit=10", "", 0)
	require.Equal(t, http.StatusOK, recorder.Code)

	page := decode[map[string]any](t, recorder)
	assert.EqualValues(t, 1, page["total"])
	assert.Empty(t, page["data"])
}
