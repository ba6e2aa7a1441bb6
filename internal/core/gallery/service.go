package gallery

import (
	"context"
	"io"
	"log/slog"

	"github.com/atelierhq/atelier/internal/platform/cache"
	"github.com/atelierhq/atelier/internal/platform/storage"
	"github.com/atelierhq/atelier/internal/platform/validate"
	"github.com/atelierhq/atelier/pkg/pointer"
	"github.com/atelierhq/atelier/pkg/slice"
	"github.com/atelierhq/atelier/pkg/uuidv7"
)

var cachedPaths = []string{"/gallery", "/"}

type Service struct {
	repo        Repository
	objects     storage.ObjectStorage
	invalidator cache.Invalidator
	logger      *slog.Logger
}

func NewService(repo Repository, objects storage.ObjectStorage, invalidator cache.Invalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		objects:     objects,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ListPaintings returns the gallery listing, optionally filtered to one
// category. The category filter options are always derived from the full
// unfiltered set so the filter bar stays stable while browsing.
func (service *Service) ListPaintings(context context.Context, category string) (*Listing, error) {
	all, err := service.repo.ListPaintings(context, "")
	if err != nil {
		return nil, err
	}

	categories := slice.Unique(slice.Map(all, func(p *Painting) string { return p.Category }))
	categories = slice.Filter(categories, func(c string) bool { return c != "" })

	paintings := all
	if category != "" {
		paintings = slice.Filter(all, func(p *Painting) bool { return p.Category == category })
	}

	return &Listing{Paintings: paintings, Categories: categories}, nil
}

func (service *Service) GetPainting(context context.Context, id string) (*Painting, error) {
	return service.repo.GetPainting(context, id)
}

// SavePainting inserts or updates depending on the presence of an ID.
// Validation precedes any store call.
func (service *Service) SavePainting(context context.Context, painting *Painting) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, painting.Title).
		MaxLen(FieldTitle, painting.Title, 300)

	if err := validator.Err(); err != nil {
		return "", err
	}

	if painting.ID == "" {
		painting.ID = uuidv7.Must()
		if err := service.repo.CreatePainting(context, painting); err != nil {
			return "", err
		}
		service.logger.Info("painting_created", slog.String("painting_id", painting.ID))
	} else {
		if err := service.repo.UpdatePainting(context, painting); err != nil {
			return "", err
		}
		service.logger.Info("painting_updated", slog.String("painting_id", painting.ID))
	}

	service.invalidate(context)
	return painting.ID, nil
}

func (service *Service) DeletePainting(context context.Context, id string) error {
	if err := service.repo.DeletePainting(context, id); err != nil {
		return err
	}

	service.logger.Warn("painting_deleted", slog.String("painting_id", id))
	service.invalidate(context)
	return nil
}

// UploadImage stores a painting image and links it to the record. Painting
// objects keep their original filename, so re-uploading the same file
// replaces the stored object.
func (service *Service) UploadImage(context context.Context, id, filename string, file io.Reader) (*Painting, error) {
	painting, err := service.repo.GetPainting(context, id)
	if err != nil {
		return nil, err
	}

	url, err := service.objects.Save(context, file, storage.PaintingPath(filename))
	if err != nil {
		return nil, err
	}

	painting.ImageURL = pointer.To(url)
	if err := service.repo.UpdatePainting(context, painting); err != nil {
		return nil, err
	}

	service.logger.Info("painting_image_uploaded", slog.String("painting_id", id))
	service.invalidate(context)
	return painting, nil
}

func (service *Service) invalidate(context context.Context) {
	if err := service.invalidator.Invalidate(context, cachedPaths...); err != nil {
		service.logger.Error("gallery_cache_invalidation_failed", slog.Any("error", err))
	}
}
