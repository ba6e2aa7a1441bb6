package blog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

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
	// Public. The listing and the per-slug post pages are cached under the
	// same site paths SavePost and DeletePost purge.
	router.With(middleware.CachePage(handler.pages, "/blog")).
		Get("/", handler.listPosts)
	router.With(middleware.CachePageFunc(handler.pages, postPagePath)).
		Get("/slug/{slug}", handler.getPostBySlug)
	router.Get("/{id}", handler.getPost)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.savePost)
		adminRoute.Put("/{id}", handler.savePost)
		adminRoute.Delete("/{id}", handler.deletePost)
		adminRoute.Post("/images", handler.uploadImage)
	})
}

// saveInput mirrors the admin editor form. PublishDate arrives as a string
// (historically a bare ISO date) and is coerced at the boundary.
type saveInput struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Tags        []string `json:"tags"`
}

func (input *saveInput) toPost(request *http.Request) *Post {
	post := &Post{
		ID:       input.ID,
		Slug:     input.Slug,
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		Author:   input.Author,
		Tags:     input.Tags,
	}

	if input.PublishDate != "" {
		logger := ctxutil.GetLogger(request.Context())
		post.PublishDate = daterange.CoerceOrNow(request.Context(), logger, input.PublishDate)
	} else {
		post.PublishDate = time.Time{}
	}

	return post
}

func postPagePath(request *http.Request) string {
	return "/blog/" + requestutil.Param(request, "slug")
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListPosts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetPost(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) getPostBySlug(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetPostBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) savePost(writer http.ResponseWriter, request *http.Request) {
	var input saveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if id := requestutil.Param(request, "id"); id != "" {
		input.ID = id
	}
	isNew := input.ID == ""

	post := input.toPost(request)
	if _, err := handler.service.SavePost(request.Context(), post); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if isNew {
		respond.Created(writer, post)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeletePost(request.Context(), requestutil.Param(request, "id")); err != nil {
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

	url, err := handler.service.UploadImage(request.Context(), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]string{"url": url})
}
