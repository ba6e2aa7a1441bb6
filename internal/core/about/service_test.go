package about

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/apperr"
	"github.com/atelierhq/atelier/internal/platform/dberr"
)

type fakeRepository struct {
	document *SiteAbout
	created  int
	updated  int
}

func (repo *fakeRepository) GetAbout(_ context.Context) (*SiteAbout, error) {
	if repo.document == nil {
		return nil, dberr.ErrNotFound
	}
	copied := *repo.document
	return &copied, nil
}

func (repo *fakeRepository) CreateAbout(_ context.Context, a *SiteAbout) error {
	repo.created++
	copied := *a
	repo.document = &copied
	return nil
}

func (repo *fakeRepository) UpdateAbout(_ context.Context, a *SiteAbout) error {
	if repo.document == nil {
		return dberr.ErrNotFound
	}
	repo.updated++
	copied := *a
	repo.document = &copied
	return nil
}

type fakeStorage struct{}

func (fakeStorage) Save(_ context.Context, _ io.Reader, objectPath string) (string, error) {
	return "/uploads/" + objectPath, nil
}
func (fakeStorage) Delete(_ context.Context, _ string) error { return nil }

type recordingInvalidator struct {
	paths []string
}

func (inv *recordingInvalidator) Invalidate(_ context.Context, sitePaths ...string) error {
	inv.paths = append(inv.paths, sitePaths...)
	return nil
}

func newTestService(repo *fakeRepository) (*Service, *recordingInvalidator) {
	invalidator := &recordingInvalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, fakeStorage{}, invalidator, logger), invalidator
}

/*
TestService_GetAbout_CreatesDefaultsOnFirstRead checks the create-once
lifecycle: a missing document is seeded with the site's Turkish defaults,
and the second read returns the same document without creating again.
*/
func TestService_GetAbout_CreatesDefaultsOnFirstRead(t *testing.T) {
	repo := &fakeRepository{}
	service, _ := newTestService(repo)

	document, err := service.GetAbout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.created)
	assert.NotEmpty(t, document.ID)
	assert.Equal(t, "Hakkımda Sayfası", document.Title)
	assert.Equal(t, "Sanatçı Adı", document.ArtistName)
	require.Len(t, document.Education, 1)
	assert.Equal(t, "İstanbul Üniversitesi", document.Education[0].Institution)
	assert.Equal(t, []string{"Yağlı Boya Tekniği"}, document.Skills)
	assert.Equal(t, "İletişime Geç", document.ContactButton)

	again, err := service.GetAbout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.created, "defaults must be created exactly once")
	assert.Equal(t, document.ID, again.ID)
}

func TestService_UpdateAbout_ContactButtonNotEditable(t *testing.T) {
	repo := &fakeRepository{}
	service, _ := newTestService(repo)

	input := &SiteAbout{
		Title:         "Yeni Başlık",
		ArtistName:    "Elif Yılmaz",
		ContactButton: "Bana Ulaşın",
	}
	document, err := service.UpdateAbout(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "İletişime Geç", document.ContactButton)
}

func TestService_UpdateAbout_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service, _ := newTestService(repo)

	_, err := service.UpdateAbout(context.Background(), &SiteAbout{ArtistName: "Elif"})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Zero(t, repo.created, "invalid update must not seed the singleton")
}

func TestService_UpdateAbout_PreservesIdentityAndPortrait(t *testing.T) {
	repo := &fakeRepository{}
	service, invalidator := newTestService(repo)

	// Seed via first read.
	seeded, err := service.GetAbout(context.Background())
	require.NoError(t, err)

	// Empty portrait in the input keeps the stored one.
	updated, err := service.UpdateAbout(context.Background(), &SiteAbout{
		Title:      "Yeni Başlık",
		ArtistName: "Elif Yılmaz",
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, updated.ID)
	assert.Equal(t, "/images/artist-portrait.jpg", updated.ArtistPortrait)
	assert.Contains(t, invalidator.paths, "/about")
}

func TestService_UploadPortrait(t *testing.T) {
	repo := &fakeRepository{}
	service, _ := newTestService(repo)

	document, err := service.UploadPortrait(context.Background(), "portre.jpg", strings.NewReader("img"))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/about/portre.jpg", document.ArtistPortrait)
	assert.Equal(t, 1, repo.updated)
}
