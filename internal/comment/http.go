// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

// Handler implements the HTTP layer for comments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the comment endpoints. Listing is public; creation passes
// through authenticate.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listComments)
	router.With(authenticate).Post("/", handler.createComment)

	return router
}

/*
GET /comments?post_id={blog_id}.

Response:
  - 200: []Comment, top-level only, oldest first; [] when none
  - 400: post_id missing or not a positive integer
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	raw := request.URL.Query().Get(FieldPostID)
	if raw == "" {
		respond.Error(writer, request, apperr.BadRequest("post_id is required"))
		return
	}

	blogID, err := softref.ParseBlogID(raw)
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("post_id must be a positive integer"))
		return
	}

	comments, err := handler.service.ListByBlog(request.Context(), blogID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comments)
}

/*
POST /comments.

Request:
  - body: CreateInput. author_id and parent_id in the body are ignored.

Response:
  - 201: Comment with parent_id null
  - 400: validation failure
  - 401: missing or invalid assertion
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	author, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.Create(request.Context(), author, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}
