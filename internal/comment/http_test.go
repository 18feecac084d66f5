// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/comment"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	"github.com/taibuivan/scribe/internal/platform/sec"
)

func newRouter(t *testing.T) (http.Handler, *sec.TokenCodec) {
	t.Helper()
	codec, err := sec.NewTokenCodec([]byte("comment-test-secret"), time.Hour)
	require.NoError(t, err)

	service, _ := newService()
	return comment.NewHandler(service).Routes(middleware.Authenticate(codec)), codec
}

/*
TestHandler_ListRequiresPostID rejects a missing or non-numeric post_id with 400.
*/
func TestHandler_ListRequiresPostID(t *testing.T) {
	router, _ := newRouter(t)

	for _, target := range []string{"/", "/?post_id=", "/?post_id=abc", "/?post_id=-3"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
		assert.Contains(t, recorder.Body.String(), `"code":"BAD_REQUEST"`, target)
	}
}

/*
TestHandler_ListEmpty returns an empty JSON array for a blog without comments.
*/
func TestHandler_ListEmpty(t *testing.T) {
	router, _ := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?post_id=12", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

/*
TestHandler_Create requires identity and ignores author and parent in the body.
*/
func TestHandler_Create(t *testing.T) {
	router, codec := newRouter(t)
	body := `{"content":"hi","blog_id":5,"author_id":77,"parent_id":3}`

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	token, err := codec.Issue(8)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	request.Header.Set("Authorization", "Bearer "+token)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.EqualValues(t, 8, created["author_id"])
	assert.EqualValues(t, 5, created["blog_id"])
	assert.Nil(t, created["parent_id"])
	assert.Contains(t, created, "parent_id")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?post_id=5", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}
