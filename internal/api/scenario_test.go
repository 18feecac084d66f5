// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/account"
	"github.com/taibuivan/scribe/internal/api"
	"github.com/taibuivan/scribe/internal/blog"
	"github.com/taibuivan/scribe/internal/comment"
	"github.com/taibuivan/scribe/internal/platform/cache"
	"github.com/taibuivan/scribe/internal/platform/config"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	"github.com/taibuivan/scribe/internal/platform/sec"
)

const sharedSecret = "scenario-shared-secret"

// cluster holds the three services, each with its own codec built from the
// same secret and its own store.
type cluster struct {
	t        *testing.T
	users    http.Handler
	blogs    http.Handler
	comments http.Handler
}

func newCodec(t *testing.T, secret string) *sec.TokenCodec {
	t.Helper()
	codec, err := sec.NewTokenCodec([]byte(secret), time.Hour)
	require.NoError(t, err)
	return codec
}

func newCluster(t *testing.T) *cluster {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Environment: "test"}

	userCodec := newCodec(t, sharedSecret)
	userService := account.NewService(account.NewMemoryUserRepository(), userCodec, cache.Noop{}, time.Minute, logger)

	blogCodec := newCodec(t, sharedSecret)
	blogService := blog.NewService(blog.NewMemoryRepository(), cache.Noop{}, time.Minute, logger)

	commentCodec := newCodec(t, sharedSecret)
	commentService := comment.NewService(comment.NewMemoryRepository(), logger)

	return &cluster{
		t: t,
		users: api.NewRouter(cfg, logger, api.Handlers{Routes: []api.Route{
			{Prefix: "/users", Handler: account.NewHandler(userService).Routes(middleware.Authenticate(userCodec))},
		}}),
		blogs: api.NewRouter(cfg, logger, api.Handlers{Routes: []api.Route{
			{Prefix: "/blogs", Handler: blog.NewHandler(blogService).Routes(middleware.Authenticate(blogCodec))},
		}}),
		comments: api.NewRouter(cfg, logger, api.Handlers{Routes: []api.Route{
			{Prefix: "/comments", Handler: comment.NewHandler(commentService).Routes(middleware.Authenticate(commentCodec))},
		}}),
	}
}

func (c *cluster) call(service http.Handler, method, target, body, token string) (int, map[string]any, []byte) {
	c.t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	service.ServeHTTP(recorder, request)

	var decoded map[string]any
	_ = json.Unmarshal(recorder.Body.Bytes(), &decoded)
	return recorder.Code, decoded, recorder.Body.Bytes()
}

// register creates an account and returns its assertion and id.
func (c *cluster) register(name string) (string, int64) {
	c.t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"password-%s"}`, name, name, name)
	status, decoded, _ := c.call(c.users, http.MethodPost, "/users", body, "")
	require.Equal(c.t, http.StatusCreated, status)

	token, _ := decoded["token"].(string)
	require.NotEmpty(c.t, token)

	subject, err := newCodec(c.t, sharedSecret).Verify(token)
	require.NoError(c.t, err)
	return token, int64(subject)
}

func (c *cluster) createBlog(token, title string) int64 {
	c.t.Helper()

	status, decoded, _ := c.call(c.blogs, http.MethodPost, "/blogs", fmt.Sprintf(`{"title":%q,"content":"body"}`, title), token)
	require.Equal(c.t, http.StatusCreated, status)
	return int64(decoded["id"].(float64))
}

/*
TestScenario_OwnershipAcrossServices registers two users and lets only the
author edit a post, using assertions issued by the user service.
*/
func TestScenario_OwnershipAcrossServices(t *testing.T) {
	c := newCluster(t)

	tokenA, idA := c.register("alice")
	tokenB, _ := c.register("bob")

	blogID := c.createBlog(tokenA, "X")
	target := fmt.Sprintf("/blogs/%d", blogID)

	status, _, _ := c.call(c.blogs, http.MethodPut, target, `{"title":"Y"}`, tokenB)
	assert.Equal(t, http.StatusForbidden, status)

	status, decoded, _ := c.call(c.blogs, http.MethodPut, target, `{"title":"Y"}`, tokenA)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Y", decoded["title"])
	assert.EqualValues(t, idA, decoded["author_id"])

	status, _, _ = c.call(c.blogs, http.MethodDelete, target, "", tokenB)
	assert.Equal(t, http.StatusForbidden, status)

	status, _, _ = c.call(c.blogs, http.MethodDelete, "/blogs/9999", "", tokenB)
	assert.Equal(t, http.StatusNotFound, status)
}

/*
TestScenario_ForeignSecretRejected refuses assertions not signed with the shared secret.
*/
func TestScenario_ForeignSecretRejected(t *testing.T) {
	c := newCluster(t)

	foreign, err := newCodec(t, "someone-elses-secret").Issue(1)
	require.NoError(t, err)

	status, decoded, _ := c.call(c.blogs, http.MethodPost, "/blogs", `{"title":"T","content":"C"}`, foreign)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", decoded["code"])

	status, _, _ = c.call(c.comments, http.MethodPost, "/comments", `{"content":"C","blog_id":1}`, foreign)
	assert.Equal(t, http.StatusUnauthorized, status)
}

/*
TestScenario_Pagination lists twelve posts two pages deep.
*/
func TestScenario_Pagination(t *testing.T) {
	c := newCluster(t)
	token, _ := c.register("writer")

	for i := 1; i <= 12; i++ {
		c.createBlog(token, fmt.Sprintf("post-%d", i))
	}

	status, decoded, _ := c.call(c.blogs, http.MethodGet, "/blogs?page=2&limit=5", "", "")
	require.Equal(t, http.StatusOK, status)

	assert.EqualValues(t, 12, decoded["total"])
	assert.EqualValues(t, 3, decoded["pages"])
	assert.EqualValues(t, 2, decoded["currentPage"])

	data, ok := decoded["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 5)
	for i, row := range data {
		assert.Equal(t, fmt.Sprintf("post-%d", 7-i), row.(map[string]any)["title"])
	}

	status, decoded, _ = c.call(c.blogs, http.MethodGet, "/blogs", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, decoded["currentPage"])
	assert.Len(t, decoded["data"], 10)
}

/*
TestScenario_DanglingReferences deletes a user and a post and checks that
content pointing at them stays readable.
*/
func TestScenario_DanglingReferences(t *testing.T) {
	c := newCluster(t)
	token, id := c.register("leaver")

	blogID := c.createBlog(token, "kept")
	status, _, _ := c.call(c.comments, http.MethodPost, "/comments", fmt.Sprintf(`{"content":"first","blog_id":%d}`, blogID), token)
	require.Equal(t, http.StatusCreated, status)

	status, decoded, _ := c.call(c.users, http.MethodDelete, fmt.Sprintf("/users/%d", id), "", token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User deleted", decoded["message"])

	status, _, _ = c.call(c.users, http.MethodGet, fmt.Sprintf("/users/%d", id), "", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, decoded, _ = c.call(c.blogs, http.MethodGet, fmt.Sprintf("/blogs/%d", blogID), "", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, id, decoded["author_id"])

	// The assertion outlives the account it names.
	status, _, _ = c.call(c.blogs, http.MethodDelete, fmt.Sprintf("/blogs/%d", blogID), "", token)
	require.Equal(t, http.StatusOK, status)

	status, _, body := c.call(c.comments, http.MethodGet, fmt.Sprintf("/comments?post_id=%d", blogID), "", "")
	require.Equal(t, http.StatusOK, status)

	var comments []map[string]any
	require.NoError(t, json.Unmarshal(body, &comments))
	require.Len(t, comments, 1)
	assert.EqualValues(t, id, comments[0]["author_id"])
}

/*
TestScenario_CommentListing covers the post_id requirement and empty lists.
*/
func TestScenario_CommentListing(t *testing.T) {
	c := newCluster(t)

	status, decoded, _ := c.call(c.comments, http.MethodGet, "/comments", "", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "post_id is required", decoded["message"])

	status, _, body := c.call(c.comments, http.MethodGet, "/comments?post_id=404", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}
