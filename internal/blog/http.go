// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
	"github.com/taibuivan/scribe/pkg/pagination"
)

// Handler implements the HTTP layer for blog posts.
type Handler struct {
	service *Service
}

// NewHandler constructs a new blog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the blog endpoints. Reads are public; writes pass through
// authenticate.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.listBlogs)
	router.Get("/{id}", handler.getBlog)

	// Author writes
	router.Group(func(gated chi.Router) {
		gated.Use(authenticate)
		gated.Post("/", handler.createBlog)
		gated.Put("/{id}", handler.updateBlog)
		gated.Delete("/{id}", handler.deleteBlog)
	})

	return router
}

/*
GET /blogs.

Request:
  - query: page, limit (defaults 1 and 10)

Response:
  - 200: pagination.Page[*Blog], newest first
*/
func (handler *Handler) listBlogs(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

/*
GET /blogs/{id}.

Response:
  - 200: Blog
  - 404: no post with this id
*/
func (handler *Handler) getBlog(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.BlogID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, b)
}

/*
POST /blogs.

Request:
  - body: CreateInput. Any author_id in the body is ignored.

Response:
  - 201: Blog
  - 400: validation failure
  - 401: missing or invalid assertion
*/
func (handler *Handler) createBlog(writer http.ResponseWriter, request *http.Request) {
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

	b, err := handler.service.Create(request.Context(), author, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, b)
}

/*
PUT /blogs/{id}.

Response:
  - 200: Blog
  - 403: caller is not the author
  - 404: no post with this id
*/
func (handler *Handler) updateBlog(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.BlogID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, err := handler.service.Update(request.Context(), caller, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, b)
}

/*
DELETE /blogs/{id}.

Response:
  - 200: {"message": "Blog deleted"}
  - 403: caller is not the author
  - 404: no post with this id
*/
func (handler *Handler) deleteBlog(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.BlogID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), caller, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Blog deleted")
}
