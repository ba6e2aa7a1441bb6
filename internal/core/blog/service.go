package blog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/atelierhq/atelier/internal/platform/cache"
	"github.com/atelierhq/atelier/internal/platform/storage"
	"github.com/atelierhq/atelier/internal/platform/validate"
	"github.com/atelierhq/atelier/pkg/slug"
	"github.com/atelierhq/atelier/pkg/uuidv7"
)

var cachedPaths = []string{"/blog", "/"}

type Service struct {
	repo        Repository
	objects     storage.ObjectStorage
	invalidator cache.Invalidator
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(repo Repository, objects storage.ObjectStorage, invalidator cache.Invalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		objects:     objects,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

func (service *Service) ListPosts(context context.Context) ([]*Post, error) {
	return service.repo.ListPosts(context)
}

func (service *Service) GetPost(context context.Context, id string) (*Post, error) {
	return service.repo.GetPost(context, id)
}

// GetPostBySlug serves the public post page.
func (service *Service) GetPostBySlug(context context.Context, postSlug string) (*Post, error) {
	return service.repo.GetPostBySlug(context, postSlug)
}

// SavePost inserts or updates a post. Title and content are mandatory;
// everything else is defaulted:
//
//   - Slug is derived from the title ONLY when none was supplied. A slug the
//     author typed (or an earlier save produced) is preserved verbatim, so
//     renaming a post never silently breaks its public URL.
//   - Excerpt falls back to the leading content characters.
//   - Author falls back to [DefaultAuthor], PublishDate to today.
//
// Slug uniqueness is not enforced; the newest post wins a collision the same
// way it always has.
func (service *Service) SavePost(context context.Context, post *Post) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, post.Title).
		Required(FieldContent, post.Content)

	if err := validator.Err(); err != nil {
		return "", err
	}

	if post.Slug == "" {
		post.Slug = slug.From(post.Title)
	}
	if post.Excerpt == "" {
		post.Excerpt = makeExcerpt(post.Content)
	}
	if post.Author == "" {
		post.Author = DefaultAuthor
	}
	if post.PublishDate.IsZero() {
		now := service.now()
		post.PublishDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if post.ID == "" {
		post.ID = uuidv7.Must()
		if err := service.repo.CreatePost(context, post); err != nil {
			return "", err
		}
		service.logger.Info("blog_post_created",
			slog.String("post_id", post.ID),
			slog.String("slug", post.Slug),
		)
	} else {
		if err := service.repo.UpdatePost(context, post); err != nil {
			return "", err
		}
		service.logger.Info("blog_post_updated", slog.String("post_id", post.ID))
	}

	service.invalidate(context, post.Slug)
	return post.ID, nil
}

func (service *Service) DeletePost(context context.Context, id string) error {
	post, err := service.repo.GetPost(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeletePost(context, id); err != nil {
		return err
	}

	service.logger.Warn("blog_post_deleted", slog.String("post_id", id))
	service.invalidate(context, post.Slug)
	return nil
}

// UploadImage stores a blog image and returns its public URL for embedding.
// The object is not linked to any post; the editor pastes the URL into the
// content or cover field.
func (service *Service) UploadImage(context context.Context, filename string, file io.Reader) (string, error) {
	url, err := service.objects.Save(context, file, storage.BlogImagePath(filename))
	if err != nil {
		return "", err
	}

	service.logger.Info("blog_image_uploaded", slog.String("url", url))
	return url, nil
}

func (service *Service) invalidate(context context.Context, postSlug string) {
	paths := append([]string{}, cachedPaths...)
	if postSlug != "" {
		paths = append(paths, "/blog/"+postSlug)
	}

	if err := service.invalidator.Invalidate(context, paths...); err != nil {
		service.logger.Error("blog_cache_invalidation_failed", slog.Any("error", err))
	}
}

// makeExcerpt takes the leading characters of the content. Counting runes
// keeps Turkish text from being cut mid-character.
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content + "..."
	}
	return string(runes[:excerptLength]) + "..."
}
