package exhibition

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/atelierhq/atelier/internal/platform/cache"
	"github.com/atelierhq/atelier/internal/platform/storage"
	"github.com/atelierhq/atelier/internal/platform/validate"
	"github.com/atelierhq/atelier/pkg/daterange"
	"github.com/atelierhq/atelier/pkg/pointer"
	"github.com/atelierhq/atelier/pkg/uuidv7"
)

// cachedPaths are the public site paths whose cached payloads become stale
// when exhibition content changes.
var cachedPaths = []string{"/exhibitions", "/admin/exhibitions", "/"}

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

// ListExhibitions returns all exhibitions in display order: upcoming and
// current shows first (soonest opening first), then past shows (most recent
// opening first). Each item carries its computed status badge.
func (service *Service) ListExhibitions(context context.Context) ([]*Exhibition, error) {
	exhibitions, err := service.repo.ListExhibitions(context)
	if err != nil {
		return nil, err
	}

	now := service.now()

	var active, past []*Exhibition
	for _, e := range exhibitions {
		e.decorate(now)
		if daterange.IsOver(now, e.EndDate) {
			past = append(past, e)
		} else {
			active = append(active, e)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartDate.Before(active[j].StartDate)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartDate.After(past[j].StartDate)
	})

	return append(active, past...), nil
}

func (service *Service) GetExhibition(context context.Context, id string) (*Exhibition, error) {
	exhibition, err := service.repo.GetExhibition(context, id)
	if err != nil {
		return nil, err
	}

	exhibition.decorate(service.now())
	return exhibition, nil
}

// SaveExhibition inserts or updates an exhibition depending on whether the
// input carries an ID. Validation runs before any store interaction: an
// invalid submit must never reach the database.
//
// startDate <= endDate is deliberately NOT enforced; a reversed range simply
// classifies as past.
func (service *Service) SaveExhibition(context context.Context, exhibition *Exhibition) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, exhibition.Title).
		MaxLen(FieldTitle, exhibition.Title, 300).
		RequiredDate(FieldStartDate, exhibition.StartDate).
		RequiredDate(FieldEndDate, exhibition.EndDate)

	if exhibition.GalleryURL != nil && *exhibition.GalleryURL != "" {
		validator.URL(FieldGalleryURL, *exhibition.GalleryURL)
	}

	if err := validator.Err(); err != nil {
		return "", err
	}

	if exhibition.ID == "" {
		exhibition.ID = uuidv7.Must()
		if err := service.repo.CreateExhibition(context, exhibition); err != nil {
			return "", err
		}
		service.logger.Info("exhibition_created", slog.String("exhibition_id", exhibition.ID))
	} else {
		if err := service.repo.UpdateExhibition(context, exhibition); err != nil {
			return "", err
		}
		service.logger.Info("exhibition_updated", slog.String("exhibition_id", exhibition.ID))
	}

	service.invalidate(context)
	return exhibition.ID, nil
}

// DeleteExhibition removes the record permanently. Uploaded images are NOT
// cleaned up; orphaned objects are an accepted cost of keeping deletion
// simple.
func (service *Service) DeleteExhibition(context context.Context, id string) error {
	if err := service.repo.DeleteExhibition(context, id); err != nil {
		return err
	}

	service.logger.Warn("exhibition_deleted", slog.String("exhibition_id", id))
	service.invalidate(context)
	return nil
}

// RemoveImage filters one URL out of the exhibition's gallery list,
// preserving the relative order of the remaining images. The read-modify-
// write cycle has no optimistic lock: concurrent edits follow last-write-wins
// like every other save.
func (service *Service) RemoveImage(context context.Context, id, imageURL string) (*Exhibition, error) {
	exhibition, err := service.repo.GetExhibition(context, id)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(exhibition.Images))
	for _, url := range exhibition.Images {
		if url != imageURL {
			remaining = append(remaining, url)
		}
	}
	exhibition.Images = remaining

	if err := service.repo.UpdateExhibition(context, exhibition); err != nil {
		return nil, err
	}

	service.logger.Info("exhibition_image_removed",
		slog.String("exhibition_id", id),
		slog.String("image_url", imageURL),
	)
	service.invalidate(context)
	return exhibition, nil
}

// UploadCover stores a new cover image and links it to the exhibition.
// The upload completes before the record is touched; if the subsequent
// update fails the stored object stays behind unlinked.
func (service *Service) UploadCover(context context.Context, id, filename string, file io.Reader) (*Exhibition, error) {
	exhibition, err := service.repo.GetExhibition(context, id)
	if err != nil {
		return nil, err
	}

	url, err := service.objects.Save(context, file, storage.ExhibitionCoverPath(id, filename))
	if err != nil {
		return nil, err
	}

	exhibition.ImageURL = pointer.To(url)
	if err := service.repo.UpdateExhibition(context, exhibition); err != nil {
		return nil, err
	}

	service.logger.Info("exhibition_cover_uploaded", slog.String("exhibition_id", id))
	service.invalidate(context)
	return exhibition, nil
}

// AddGalleryImage stores a new gallery image and appends its URL to the end
// of the exhibition's image list (insertion order is display order).
func (service *Service) AddGalleryImage(context context.Context, id, filename string, file io.Reader) (*Exhibition, error) {
	exhibition, err := service.repo.GetExhibition(context, id)
	if err != nil {
		return nil, err
	}

	url, err := service.objects.Save(context, file, storage.ExhibitionGalleryPath(id, filename))
	if err != nil {
		return nil, err
	}

	exhibition.Images = append(exhibition.Images, url)
	if err := service.repo.UpdateExhibition(context, exhibition); err != nil {
		return nil, err
	}

	service.logger.Info("exhibition_gallery_image_added", slog.String("exhibition_id", id))
	service.invalidate(context)
	return exhibition, nil
}

// invalidate purges the cached public pages. Cache failures are logged, not
// propagated: the write already succeeded and the TTL bounds staleness.
func (service *Service) invalidate(context context.Context) {
	if err := service.invalidator.Invalidate(context, cachedPaths...); err != nil {
		service.logger.Error("exhibition_cache_invalidation_failed", slog.Any("error", err))
	}
}
