package exhibition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/constants"
)

// pageCacheFake backs both the route-level cache and the service's
// invalidator, so a save purges exactly what a read populated.
type pageCacheFake struct {
	entries map[string][]byte
}

func (pages *pageCacheFake) Get(_ context.Context, sitePath string) ([]byte, error) {
	payload, ok := pages.entries[sitePath]
	if !ok {
		return nil, errors.New("miss")
	}
	return payload, nil
}

func (pages *pageCacheFake) Set(_ context.Context, sitePath string, payload []byte) error {
	pages.entries[sitePath] = payload
	return nil
}

func (pages *pageCacheFake) Invalidate(_ context.Context, sitePaths ...string) error {
	for _, sitePath := range sitePaths {
		delete(pages.entries, sitePath)
	}
	return nil
}

/*
TestHandler_ListCachedUntilSave walks the full cache lifecycle: the first
public read populates the page cache, the second is served from it without
touching the service, and an admin save purges it so the next read sees the
new content.
*/
func TestHandler_ListCachedUntilSave(t *testing.T) {
	repo := newFakeRepository(
		testExhibition("ex-1", "Eski Ad", date(2026, 1, 1), date(2026, 2, 1)),
	)
	pages := &pageCacheFake{entries: map[string][]byte{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(repo, &fakeStorage{}, pages, logger)

	router := chi.NewRouter()
	router.Route("/exhibitions", NewHandler(service, pages).RegisterRoutes)

	get := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/exhibitions", nil))
		return recorder
	}

	first := get()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(constants.HeaderXCache))
	require.Contains(t, pages.entries, "/exhibitions")

	second := get()
	assert.Equal(t, "HIT", second.Header().Get(constants.HeaderXCache))
	assert.Contains(t, second.Body.String(), "Eski Ad")

	_, err := service.SaveExhibition(context.Background(),
		testExhibition("ex-1", "Yeni Ad", date(2026, 1, 1), date(2026, 2, 1)))
	require.NoError(t, err)
	assert.NotContains(t, pages.entries, "/exhibitions", "a save must purge the listing")

	third := get()
	assert.Equal(t, "MISS", third.Header().Get(constants.HeaderXCache))
	assert.Contains(t, third.Body.String(), "Yeni Ad")
}
