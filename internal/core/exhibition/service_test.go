package exhibition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/apperr"
	"github.com/atelierhq/atelier/pkg/daterange"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	items   map[string]*Exhibition
	created int
	updated int
}

func newFakeRepository(items ...*Exhibition) *fakeRepository {
	repo := &fakeRepository{items: map[string]*Exhibition{}}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (repo *fakeRepository) ListExhibitions(_ context.Context) ([]*Exhibition, error) {
	var all []*Exhibition
	for _, item := range repo.items {
		all = append(all, item)
	}
	return all, nil
}

func (repo *fakeRepository) GetExhibition(_ context.Context, id string) (*Exhibition, error) {
	item, ok := repo.items[id]
	if !ok {
		return nil, apperr.NotFound("Exhibition")
	}
	copied := *item
	return &copied, nil
}

func (repo *fakeRepository) CreateExhibition(_ context.Context, e *Exhibition) error {
	repo.created++
	repo.items[e.ID] = e
	return nil
}

func (repo *fakeRepository) UpdateExhibition(_ context.Context, e *Exhibition) error {
	if _, ok := repo.items[e.ID]; !ok {
		return apperr.NotFound("Exhibition")
	}
	repo.updated++
	repo.items[e.ID] = e
	return nil
}

func (repo *fakeRepository) DeleteExhibition(_ context.Context, id string) error {
	if _, ok := repo.items[id]; !ok {
		return apperr.NotFound("Exhibition")
	}
	delete(repo.items, id)
	return nil
}

// fakeStorage records saves and returns deterministic URLs.
type fakeStorage struct {
	saved []string
	fail  bool
}

func (storage *fakeStorage) Save(_ context.Context, _ io.Reader, objectPath string) (string, error) {
	if storage.fail {
		return "", errors.New("disk full")
	}
	storage.saved = append(storage.saved, objectPath)
	return "/uploads/" + objectPath, nil
}

func (storage *fakeStorage) Delete(_ context.Context, _ string) error { return nil }

// recordingInvalidator captures purged cache paths.
type recordingInvalidator struct {
	paths []string
}

func (inv *recordingInvalidator) Invalidate(_ context.Context, sitePaths ...string) error {
	inv.paths = append(inv.paths, sitePaths...)
	return nil
}

func newTestService(repo *fakeRepository) (*Service, *fakeStorage, *recordingInvalidator) {
	objects := &fakeStorage{}
	invalidator := &recordingInvalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, objects, invalidator, logger), objects, invalidator
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func testExhibition(id, title string, start, end time.Time) *Exhibition {
	return &Exhibition{ID: id, Title: title, StartDate: start, EndDate: end, Location: "İstanbul"}
}

/*
TestService_ListExhibitions_Ordering verifies the display ordering: upcoming
and current shows ascending by opening date, then past shows descending by
opening date.
*/
func TestService_ListExhibitions_Ordering(t *testing.T) {
	repo := newFakeRepository(
		testExhibition("c", "C", date(2023, 3, 1), date(2023, 4, 1)),
		testExhibition("a", "A", date(2024, 5, 1), date(2024, 7, 1)),
		testExhibition("b", "B", date(2025, 1, 1), date(2025, 2, 1)),
	)
	service, _, _ := newTestService(repo)
	service.now = func() time.Time { return date(2024, 6, 1) }

	listed, err := service.ListExhibitions(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// A runs over "now" (current), B has not opened (upcoming), C is over.
	// Active shows sort by opening date, so the current show precedes the
	// upcoming one here.
	assert.Equal(t, "a", listed[0].ID)
	assert.Equal(t, daterange.StatusCurrent, listed[0].Status)
	assert.Equal(t, "b", listed[1].ID)
	assert.Equal(t, daterange.StatusUpcoming, listed[1].Status)
	assert.Equal(t, "c", listed[2].ID)
	assert.Equal(t, daterange.StatusPast, listed[2].Status)
}

func TestService_ListExhibitions_UpcomingBeforeAllPast(t *testing.T) {
	repo := newFakeRepository(
		testExhibition("a", "A", date(2024, 1, 1), date(2024, 1, 10)),
		testExhibition("b", "B", date(2025, 6, 1), date(2025, 6, 10)),
		testExhibition("c", "C", date(2023, 1, 1), date(2023, 1, 5)),
	)
	service, _, _ := newTestService(repo)
	service.now = func() time.Time { return date(2024, 6, 1) }

	listed, err := service.ListExhibitions(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// B has not opened yet; A and C are over, newest opening first.
	assert.Equal(t, "b", listed[0].ID)
	assert.Equal(t, "a", listed[1].ID)
	assert.Equal(t, "c", listed[2].ID)
}

func TestService_FormattedDateInPayload(t *testing.T) {
	repo := newFakeRepository(
		testExhibition("x", "X", date(2026, 5, 1), date(2026, 7, 12)),
	)
	service, _, _ := newTestService(repo)

	listed, err := service.ListExhibitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1 Mayıs 2026 - 12 Temmuz 2026", listed[0].FormattedDate)

	fetched, err := service.GetExhibition(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "1 Mayıs 2026 - 12 Temmuz 2026", fetched.FormattedDate)
}

func TestService_ListExhibitions_EndsTodayIsCurrent(t *testing.T) {
	repo := newFakeRepository(
		testExhibition("x", "X", date(2024, 5, 1), date(2024, 6, 1)),
	)
	service, _, _ := newTestService(repo)
	// Late in the day the show still runs until end of day.
	service.now = func() time.Time { return time.Date(2024, 6, 1, 22, 30, 0, 0, time.UTC) }

	listed, err := service.ListExhibitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, daterange.StatusCurrent, listed[0].Status)
}

func TestService_ListExhibitions_PastDescending(t *testing.T) {
	repo := newFakeRepository(
		testExhibition("old", "Old", date(2020, 1, 1), date(2020, 2, 1)),
		testExhibition("recent", "Recent", date(2023, 1, 1), date(2023, 2, 1)),
	)
	service, _, _ := newTestService(repo)
	service.now = func() time.Time { return date(2024, 6, 1) }

	listed, err := service.ListExhibitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "recent", listed[0].ID)
	assert.Equal(t, "old", listed[1].ID)
}

/*
TestService_SaveExhibition_ValidationBeforeStore asserts that an invalid
submit never reaches the repository.
*/
func TestService_SaveExhibition_ValidationBeforeStore(t *testing.T) {
	tests := []struct {
		name  string
		input *Exhibition
	}{
		{"missing_title", testExhibition("", "", date(2024, 1, 1), date(2024, 2, 1))},
		{"missing_start_date", testExhibition("", "Sergi", time.Time{}, date(2024, 2, 1))},
		{"missing_end_date", testExhibition("", "Sergi", date(2024, 1, 1), time.Time{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service, _, invalidator := newTestService(repo)

			_, err := service.SaveExhibition(context.Background(), tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Zero(t, repo.created, "store must not be reached on validation failure")
			assert.Empty(t, invalidator.paths)
		})
	}
}

func TestService_SaveExhibition_ReversedRangeAllowed(t *testing.T) {
	repo := newFakeRepository()
	service, _, _ := newTestService(repo)

	// endDate before startDate is accepted; the range just classifies past.
	id, err := service.SaveExhibition(context.Background(),
		testExhibition("", "Ters Sergi", date(2024, 5, 1), date(2024, 1, 1)))

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, repo.created)
}

func TestService_SaveExhibition_InsertAssignsID(t *testing.T) {
	repo := newFakeRepository()
	service, _, invalidator := newTestService(repo)

	id, err := service.SaveExhibition(context.Background(),
		testExhibition("", "Yeni Sergi", date(2026, 1, 1), date(2026, 2, 1)))

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, repo.created)
	assert.Contains(t, invalidator.paths, "/exhibitions")
	assert.Contains(t, invalidator.paths, "/")
}

func TestService_SaveExhibition_UpdateInPlace(t *testing.T) {
	existing := testExhibition("ex-1", "Eski Ad", date(2026, 1, 1), date(2026, 2, 1))
	repo := newFakeRepository(existing)
	service, _, _ := newTestService(repo)

	updated := testExhibition("ex-1", "Yeni Ad", date(2026, 1, 1), date(2026, 2, 1))
	id, err := service.SaveExhibition(context.Background(), updated)

	require.NoError(t, err)
	assert.Equal(t, "ex-1", id)
	assert.Zero(t, repo.created)
	assert.Equal(t, 1, repo.updated)
	assert.Equal(t, "Yeni Ad", repo.items["ex-1"].Title)
}

/*
TestService_RemoveImage checks the filter preserves the order of remaining
gallery images.
*/
func TestService_RemoveImage(t *testing.T) {
	existing := testExhibition("ex-1", "Sergi", date(2026, 1, 1), date(2026, 2, 1))
	existing.Images = []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"}
	repo := newFakeRepository(existing)
	service, _, _ := newTestService(repo)

	result, err := service.RemoveImage(context.Background(), "ex-1", "/uploads/b.jpg")

	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/c.jpg"}, result.Images)
}

func TestService_RemoveImage_AbsentURLIsNoop(t *testing.T) {
	existing := testExhibition("ex-1", "Sergi", date(2026, 1, 1), date(2026, 2, 1))
	existing.Images = []string{"/uploads/a.jpg"}
	repo := newFakeRepository(existing)
	service, _, _ := newTestService(repo)

	result, err := service.RemoveImage(context.Background(), "ex-1", "/uploads/ghost.jpg")

	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.jpg"}, result.Images)
}

func TestService_UploadCover_LinksURL(t *testing.T) {
	existing := testExhibition("ex-1", "Sergi", date(2026, 1, 1), date(2026, 2, 1))
	repo := newFakeRepository(existing)
	service, objects, _ := newTestService(repo)

	result, err := service.UploadCover(context.Background(), "ex-1", "kapak.jpg", strings.NewReader("img"))

	require.NoError(t, err)
	require.NotNil(t, result.ImageURL)
	assert.True(t, strings.HasPrefix(*result.ImageURL, "/uploads/exhibition_covers/ex-1/"))
	require.Len(t, objects.saved, 1)
}

func TestService_AddGalleryImage_AppendsInOrder(t *testing.T) {
	existing := testExhibition("ex-1", "Sergi", date(2026, 1, 1), date(2026, 2, 1))
	existing.Images = []string{"/uploads/first.jpg"}
	repo := newFakeRepository(existing)
	service, _, _ := newTestService(repo)

	result, err := service.AddGalleryImage(context.Background(), "ex-1", "ikinci.jpg", strings.NewReader("img"))

	require.NoError(t, err)
	require.Len(t, result.Images, 2)
	assert.Equal(t, "/uploads/first.jpg", result.Images[0])
}

func TestService_UploadCover_StorageFailureLeavesRecord(t *testing.T) {
	existing := testExhibition("ex-1", "Sergi", date(2026, 1, 1), date(2026, 2, 1))
	repo := newFakeRepository(existing)
	service, objects, _ := newTestService(repo)
	objects.fail = true

	_, err := service.UploadCover(context.Background(), "ex-1", "kapak.jpg", strings.NewReader("img"))

	require.Error(t, err)
	assert.Nil(t, repo.items["ex-1"].ImageURL)
	assert.Zero(t, repo.updated)
}

func TestService_DeleteExhibition(t *testing.T) {
	existing := testExhibition("ex-1", "Sergi", date(2026, 1, 1), date(2026, 2, 1))
	repo := newFakeRepository(existing)
	service, _, invalidator := newTestService(repo)

	require.NoError(t, service.DeleteExhibition(context.Background(), "ex-1"))
	assert.Empty(t, repo.items)
	assert.Contains(t, invalidator.paths, "/exhibitions")

	err := service.DeleteExhibition(context.Background(), "ex-1")
	assert.Error(t, err)
}
