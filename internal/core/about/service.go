package about

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/atelierhq/atelier/internal/platform/cache"
	"github.com/atelierhq/atelier/internal/platform/dberr"
	"github.com/atelierhq/atelier/internal/platform/storage"
	"github.com/atelierhq/atelier/internal/platform/validate"
	"github.com/atelierhq/atelier/pkg/uuidv7"
)

var cachedPaths = []string{"/about", "/admin/about"}

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

// GetAbout returns the about-page document, creating it with the site's
// default content on the very first read. After that the document is
// update-only and never deleted, so the page can never 404.
func (service *Service) GetAbout(context context.Context) (*SiteAbout, error) {
	document, err := service.repo.GetAbout(context)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			return nil, err
		}

		document = defaultAbout()
		document.ID = uuidv7.Must()
		if err := service.repo.CreateAbout(context, document); err != nil {
			return nil, err
		}
		service.logger.Info("about_defaults_created", slog.String("about_id", document.ID))
	}

	document.ContactButton = ContactButtonText
	return document, nil
}

// UpdateAbout overwrites the singleton's editable fields. The contact button
// text is policy, not content: whatever the client sends is discarded.
func (service *Service) UpdateAbout(context context.Context, input *SiteAbout) (*SiteAbout, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		Required(FieldArtistName, input.ArtistName)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Reading first guarantees the singleton exists and keeps its identity.
	document, err := service.GetAbout(context)
	if err != nil {
		return nil, err
	}

	document.Title = input.Title
	document.Description = input.Description
	document.ArtistName = input.ArtistName
	document.Biography = input.Biography
	document.ArtisticJourney = input.ArtisticJourney
	document.ArtPhilosophy = input.ArtPhilosophy
	document.Education = input.Education
	document.Skills = input.Skills
	document.ContactMessage = input.ContactMessage
	if input.ArtistPortrait != "" {
		document.ArtistPortrait = input.ArtistPortrait
	}

	if err := service.repo.UpdateAbout(context, document); err != nil {
		return nil, err
	}

	service.logger.Info("about_updated", slog.String("about_id", document.ID))
	service.invalidate(context)

	document.ContactButton = ContactButtonText
	return document, nil
}

// UploadPortrait stores a new portrait image and links it to the document.
func (service *Service) UploadPortrait(context context.Context, filename string, file io.Reader) (*SiteAbout, error) {
	document, err := service.GetAbout(context)
	if err != nil {
		return nil, err
	}

	url, err := service.objects.Save(context, file, storage.AboutPath(filename))
	if err != nil {
		return nil, err
	}

	document.ArtistPortrait = url
	if err := service.repo.UpdateAbout(context, document); err != nil {
		return nil, err
	}

	service.logger.Info("about_portrait_uploaded", slog.String("url", url))
	service.invalidate(context)
	return document, nil
}

func (service *Service) invalidate(context context.Context) {
	if err := service.invalidator.Invalidate(context, cachedPaths...); err != nil {
		service.logger.Error("about_cache_invalidation_failed", slog.Any("error", err))
	}
}
