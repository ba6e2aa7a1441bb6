package gallery

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/apperr"
)

type fakeRepository struct {
	paintings []*Painting
	created   int
}

func (repo *fakeRepository) ListPaintings(_ context.Context, category string) ([]*Painting, error) {
	if category == "" {
		return repo.paintings, nil
	}
	var filtered []*Painting
	for _, p := range repo.paintings {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (repo *fakeRepository) GetPainting(_ context.Context, id string) (*Painting, error) {
	for _, p := range repo.paintings {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Painting")
}

func (repo *fakeRepository) CreatePainting(_ context.Context, p *Painting) error {
	repo.created++
	repo.paintings = append(repo.paintings, p)
	return nil
}

func (repo *fakeRepository) UpdatePainting(_ context.Context, p *Painting) error {
	for i, existing := range repo.paintings {
		if existing.ID == p.ID {
			repo.paintings[i] = p
			return nil
		}
	}
	return apperr.NotFound("Painting")
}

func (repo *fakeRepository) DeletePainting(_ context.Context, id string) error {
	for i, p := range repo.paintings {
		if p.ID == id {
			repo.paintings = append(repo.paintings[:i], repo.paintings[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Painting")
}

type fakeStorage struct{}

func (fakeStorage) Save(_ context.Context, _ io.Reader, objectPath string) (string, error) {
	return "/uploads/" + objectPath, nil
}
func (fakeStorage) Delete(_ context.Context, _ string) error { return nil }

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(_ context.Context, _ ...string) error { return nil }

func newTestService(repo *fakeRepository) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, fakeStorage{}, nopInvalidator{}, logger)
}

func painting(id, title, category string) *Painting {
	return &Painting{ID: id, Title: title, Category: category}
}

/*
TestService_ListPaintings_CategoryDedup verifies the filter options are the
distinct categories in order of first appearance, with empties dropped.
*/
func TestService_ListPaintings_CategoryDedup(t *testing.T) {
	repo := &fakeRepository{paintings: []*Painting{
		painting("1", "Gün Batımı", "Yağlı Boya"),
		painting("2", "Liman", "Suluboya"),
		painting("3", "Kış", "Yağlı Boya"),
		painting("4", "Eskiz", ""),
	}}
	service := newTestService(repo)

	listing, err := service.ListPaintings(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Yağlı Boya", "Suluboya"}, listing.Categories)
	assert.Len(t, listing.Paintings, 4)
}

func TestService_ListPaintings_FilterKeepsFullCategorySet(t *testing.T) {
	repo := &fakeRepository{paintings: []*Painting{
		painting("1", "Gün Batımı", "Yağlı Boya"),
		painting("2", "Liman", "Suluboya"),
	}}
	service := newTestService(repo)

	listing, err := service.ListPaintings(context.Background(), "Suluboya")
	require.NoError(t, err)

	require.Len(t, listing.Paintings, 1)
	assert.Equal(t, "Liman", listing.Paintings[0].Title)
	// The filter bar still shows every category.
	assert.Equal(t, []string{"Yağlı Boya", "Suluboya"}, listing.Categories)
}

func TestService_SavePainting_RequiresTitle(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	_, err := service.SavePainting(context.Background(), painting("", "", "Yağlı Boya"))

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Zero(t, repo.created)
}

func TestService_SavePainting_Insert(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	id, err := service.SavePainting(context.Background(), painting("", "Yeni Eser", "Yağlı Boya"))

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, repo.created)
}

func TestService_UploadImage_LinksURL(t *testing.T) {
	repo := &fakeRepository{paintings: []*Painting{painting("p-1", "Eser", "Yağlı Boya")}}
	service := newTestService(repo)

	result, err := service.UploadImage(context.Background(), "p-1", "eser.jpg", strings.NewReader("img"))

	require.NoError(t, err)
	require.NotNil(t, result.ImageURL)
	assert.Equal(t, "/uploads/paintings/eser.jpg", *result.ImageURL)
}
