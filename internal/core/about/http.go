package about

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/platform/middleware"
	requestutil "github.com/atelierhq/atelier/internal/platform/request"
	"github.com/atelierhq/atelier/internal/platform/respond"
)

type Handler struct {
	service *Service
	pages   middleware.PageStore
}

func NewHandler(service *Service, pages middleware.PageStore) *Handler {
	return &Handler{service: service, pages: pages}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public. Cached under the same path UpdateAbout purges.
	router.With(middleware.CachePage(handler.pages, "/about")).
		Get("/", handler.getAbout)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Put("/", handler.updateAbout)
		adminRoute.Post("/portrait", handler.uploadPortrait)
	})
}

func (handler *Handler) getAbout(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.GetAbout(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) updateAbout(writer http.ResponseWriter, request *http.Request) {
	var input SiteAbout
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.UpdateAbout(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) uploadPortrait(writer http.ResponseWriter, request *http.Request) {
	file, header, err := requestutil.FormImage(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	document, err := handler.service.UploadPortrait(request.Context(), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}
