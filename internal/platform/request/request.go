// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/softref"
	"github.com/taibuivan/scribe/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
UserID parses a user id from a named URL parameter.

An unparsable id cannot match any row, so it is reported as NOT_FOUND.
*/
func UserID(request *http.Request, name string) (softref.UserID, error) {
	id, err := softref.ParseUserID(chi.URLParam(request, name))
	if err != nil {
		return 0, apperr.NotFound("User")
	}
	return id, nil
}

/*
BlogID parses a blog id from a named URL parameter.
*/
func BlogID(request *http.Request, name string) (softref.BlogID, error) {
	id, err := softref.ParseBlogID(chi.URLParam(request, name))
	if err != nil {
		return 0, apperr.NotFound("Blog")
	}
	return id, nil
}

/*
RequiredSubject returns the verified caller id bound by the identity middleware.

This is the only source handlers may use to answer "who is calling"; ids in
the request body or path are never trusted for that purpose.

Returns:
  - softref.UserID: the caller
  - error: apperr.Unauthorized if the route was not gated
*/
func RequiredSubject(request *http.Request) (softref.UserID, error) {
	subject, ok := ctxutil.GetSubject(request.Context())
	if !ok {
		return 0, apperr.Unauthorized("Authentication required")
	}
	return subject, nil
}
