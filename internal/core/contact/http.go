// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/platform/middleware"
	requestutil "github.com/atelierhq/atelier/internal/platform/request"
	"github.com/atelierhq/atelier/internal/platform/respond"
	"github.com/atelierhq/atelier/pkg/convert"
	"github.com/atelierhq/atelier/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public: the contact form submits here.
	router.Post("/", handler.sendMessage)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listMessages)
		adminRoute.Get("/unread-count", handler.unreadCount)
		adminRoute.Get("/{id}", handler.getMessage)
		adminRoute.Patch("/{id}/read", handler.markRead)
		adminRoute.Patch("/{id}/archive", handler.archive)
		adminRoute.Delete("/{id}", handler.deleteMessage)
	})
}

func (handler *Handler) sendMessage(writer http.ResponseWriter, request *http.Request) {
	var input ContactMessage
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.SendMessage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	includeArchived := convert.ToBool(request.URL.Query().Get("includeArchived"))
	params := pagination.FromRequest(request)

	messages, meta, err := handler.service.ListMessages(request.Context(), includeArchived, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, messages, meta)
}

func (handler *Handler) getMessage(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.GetMessage(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.MarkRead(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

func (handler *Handler) archive(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.Archive(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

func (handler *Handler) deleteMessage(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteMessage(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) unreadCount(writer http.ResponseWriter, request *http.Request) {
	count, err := handler.service.CountUnread(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"count": count})
}
