// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
)

// Handler implements the HTTP layer for user accounts.
type Handler struct {
	service *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the user endpoints.
//
// # Endpoints
//   - POST /        : register, returns an assertion
//   - POST /login   : returns an assertion
//   - GET /{id}     : public profile
//   - PUT /{id}     : gated partial update
//   - DELETE /{id}  : gated delete
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/", handler.register)
	router.Post("/login", handler.login)
	router.Get("/{id}", handler.getUser)

	// Protected endpoints
	router.Group(func(gated chi.Router) {
		gated.Use(authenticate)
		gated.Put("/{id}", handler.updateUser)
		gated.Delete("/{id}", handler.deleteUser)
	})

	return router
}

/*
POST /users.

Response:
  - 201: TokenResponse
  - 400: validation failure or email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, TokenResponse{Token: token})
}

/*
POST /users/login.

Response:
  - 200: TokenResponse
  - 400: {"message": "Invalid credentials"}
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, TokenResponse{Token: token})
}

/*
GET /users/{id}.

Response:
  - 200: User (never the password hash)
  - 404: no account with this id
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UserID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

// PUT /users/{id}.
func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.UserID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Update(request.Context(), caller, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

// DELETE /users/{id}.
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredSubject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.UserID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), caller, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "User deleted")
}
