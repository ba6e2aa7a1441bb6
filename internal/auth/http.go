// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/platform/constants"
	"github.com/atelierhq/atelier/internal/platform/ctxutil"
	"github.com/atelierhq/atelier/internal/platform/middleware"
	requestutil "github.com/atelierhq/atelier/internal/platform/request"
	"github.com/atelierhq/atelier/internal/platform/respond"
	"github.com/atelierhq/atelier/internal/platform/validate"
)

// Handler implements authentication HTTP endpoints.
//
// # Scope
//
// There is deliberately no register endpoint. Accounts exist only for
// allow-listed emails, seeded at startup by [Service.EnsureAdmins].
type Handler struct {
	service       *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler]. secureCookies should be true in
// production so refresh cookies are never sent over plain HTTP.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Post("/refresh", handler.refresh)

	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)
		authedRoute.Get("/me", handler.me)
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	session, err := handler.service.Login(request.Context(), LoginInput{
		Email:     input.Email,
		Password:  input.Password,
		UserAgent: request.UserAgent(),
		IPAddress: request.RemoteAddr,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken, session.RefreshTokenExpiresAt)
	respond.OK(writer, map[string]any{
		"access_token": session.AccessToken,
		"user":         session.User,
	})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil {
		if err := handler.service.Logout(request.Context(), cookie.Value); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	handler.clearRefreshCookie(writer)
	respond.NoContent(writer)
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("refresh_token", "cookie is missing"))
		return
	}

	session, err := handler.service.RefreshSession(request.Context(), cookie.Value, request.UserAgent(), request.RemoteAddr)
	if err != nil {
		// The cookie held a dead token; drop it so the client stops retrying.
		handler.clearRefreshCookie(writer)
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken, session.RefreshTokenExpiresAt)
	respond.OK(writer, map[string]any{
		"access_token": session.AccessToken,
		"user":         session.User,
	})
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetAuthUser(request.Context())

	user, err := handler.service.GetUser(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

// setRefreshCookie stores the refresh token in an HttpOnly cookie scoped to
// the auth routes, so scripts never see it and it is not sent on content
// requests.
func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    token,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (handler *Handler) clearRefreshCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
