package gallery

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
	// Public. Only the unfiltered listing is cached; category views hit
	// the store directly so the single purged key stays authoritative.
	router.With(middleware.CachePageFunc(handler.pages, galleryPagePath)).
		Get("/", handler.listPaintings)
	router.Get("/{id}", handler.getPainting)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.savePainting)
		adminRoute.Put("/{id}", handler.savePainting)
		adminRoute.Delete("/{id}", handler.deletePainting)
		adminRoute.Post("/{id}/image", handler.uploadImage)
	})
}

func galleryPagePath(request *http.Request) string {
	if request.URL.Query().Get("category") != "" {
		return ""
	}
	return "/gallery"
}

func (handler *Handler) listPaintings(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.service.ListPaintings(request.Context(), request.URL.Query().Get("category"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) getPainting(writer http.ResponseWriter, request *http.Request) {
	painting, err := handler.service.GetPainting(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, painting)
}

func (handler *Handler) savePainting(writer http.ResponseWriter, request *http.Request) {
	var input Painting
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if id := requestutil.Param(request, "id"); id != "" {
		input.ID = id
	}
	isNew := input.ID == ""

	if _, err := handler.service.SavePainting(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if isNew {
		respond.Created(writer, input)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePainting(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeletePainting(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	file, header, err := requestutil.FormImage(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	painting, err := handler.service.UploadImage(request.Context(), requestutil.Param(request, "id"), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, painting)
}
