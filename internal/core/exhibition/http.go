package exhibition

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/platform/apperr"
	"github.com/atelierhq/atelier/internal/platform/ctxutil"
	"github.com/atelierhq/atelier/internal/platform/middleware"
	requestutil "github.com/atelierhq/atelier/internal/platform/request"
	"github.com/atelierhq/atelier/internal/platform/respond"
	"github.com/atelierhq/atelier/pkg/daterange"
)

type Handler struct {
	service *Service
	pages   middleware.PageStore
}

func NewHandler(service *Service, pages middleware.PageStore) *Handler {
	return &Handler{service: service, pages: pages}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public. The list is served from the page cache; saves purge it.
	router.With(middleware.CachePage(handler.pages, "/exhibitions")).
		Get("/", handler.listExhibitions)
	router.Get("/{id}", handler.getExhibition)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.saveExhibition)
		adminRoute.Put("/{id}", handler.saveExhibition)
		adminRoute.Delete("/{id}", handler.deleteExhibition)

		adminRoute.Post("/{id}/cover", handler.uploadCover)
		adminRoute.Post("/{id}/images", handler.addGalleryImage)
		adminRoute.Delete("/{id}/images", handler.removeImage)
	})
}

// saveInput carries the admin form fields. Dates arrive as strings because
// historic clients sent a mix of ISO dates, RFC 3339 timestamps, and unix
// milliseconds; coercion happens here at the boundary.
type saveInput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	GalleryName *string  `json:"galleryName"`
	GalleryURL  *string  `json:"galleryUrl"`
	ImageURL    *string  `json:"imageUrl"`
	Images      []string `json:"images"`
}

func (input *saveInput) toExhibition(request *http.Request) *Exhibition {
	logger := ctxutil.GetLogger(request.Context())

	exhibition := &Exhibition{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		GalleryName: input.GalleryName,
		GalleryURL:  input.GalleryURL,
		ImageURL:    input.ImageURL,
		Images:      input.Images,
	}

	// Absent dates stay zero so the required check fires; present but
	// unparseable dates fall back to "now" rather than failing the save.
	if input.StartDate != "" {
		exhibition.StartDate = daterange.CoerceOrNow(request.Context(), logger, input.StartDate)
	} else {
		exhibition.StartDate = time.Time{}
	}
	if input.EndDate != "" {
		exhibition.EndDate = daterange.CoerceOrNow(request.Context(), logger, input.EndDate)
	} else {
		exhibition.EndDate = time.Time{}
	}

	return exhibition
}

func (handler *Handler) listExhibitions(writer http.ResponseWriter, request *http.Request) {
	exhibitions, err := handler.service.ListExhibitions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exhibitions)
}

func (handler *Handler) getExhibition(writer http.ResponseWriter, request *http.Request) {
	exhibition, err := handler.service.GetExhibition(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exhibition)
}

func (handler *Handler) saveExhibition(writer http.ResponseWriter, request *http.Request) {
	var input saveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The route parameter wins over any id in the body on PUT.
	if id := requestutil.Param(request, "id"); id != "" {
		input.ID = id
	}

	isNew := input.ID == ""
	exhibition := input.toExhibition(request)

	if _, err := handler.service.SaveExhibition(request.Context(), exhibition); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if isNew {
		respond.Created(writer, exhibition)
		return
	}
	respond.OK(writer, exhibition)
}

func (handler *Handler) deleteExhibition(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteExhibition(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) uploadCover(writer http.ResponseWriter, request *http.Request) {
	file, header, err := requestutil.FormImage(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	exhibition, err := handler.service.UploadCover(request.Context(), requestutil.Param(request, "id"), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exhibition)
}

func (handler *Handler) addGalleryImage(writer http.ResponseWriter, request *http.Request) {
	file, header, err := requestutil.FormImage(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	exhibition, err := handler.service.AddGalleryImage(request.Context(), requestutil.Param(request, "id"), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exhibition)
}

func (handler *Handler) removeImage(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		URL string `json:"url"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.URL == "" {
		respond.Error(writer, request, apperr.ValidationError("Image URL is required"))
		return
	}

	exhibition, err := handler.service.RemoveImage(request.Context(), requestutil.Param(request, "id"), input.URL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exhibition)
}
