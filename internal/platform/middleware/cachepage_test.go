// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/constants"
)

// fakePageStore is an in-memory PageStore for middleware tests.
type fakePageStore struct {
	entries map[string][]byte
	sets    int
}

func newFakePageStore() *fakePageStore {
	return &fakePageStore{entries: map[string][]byte{}}
}

func (store *fakePageStore) Get(_ context.Context, sitePath string) ([]byte, error) {
	payload, ok := store.entries[sitePath]
	if !ok {
		return nil, errors.New("miss")
	}
	return payload, nil
}

func (store *fakePageStore) Set(_ context.Context, sitePath string, payload []byte) error {
	store.sets++
	store.entries[sitePath] = payload
	return nil
}

func cachedHandler(store *fakePageStore, sitePath string, handlerRuns *int) http.Handler {
	return CachePage(store, sitePath)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		*handlerRuns++
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.Write([]byte(`{"data":[]}`))
	}))
}

func TestCachePage_MissPopulatesThenHits(t *testing.T) {
	store := newFakePageStore()
	handlerRuns := 0
	handler := cachedHandler(store, "/exhibitions", &handlerRuns)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(constants.HeaderXCache))
	assert.Equal(t, 1, handlerRuns)
	require.Contains(t, store.entries, "/exhibitions")
	assert.JSONEq(t, `{"data":[]}`, string(store.entries["/exhibitions"]))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get(constants.HeaderXCache))
	assert.JSONEq(t, `{"data":[]}`, second.Body.String())
	assert.Equal(t, 1, handlerRuns, "a hit must not reach the handler")
}

func TestCachePage_ErrorResponsesAreNotStored(t *testing.T) {
	store := newFakePageStore()
	handler := CachePage(store, "/exhibitions")(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Zero(t, store.sets)
	assert.Empty(t, store.entries)
}

func TestCachePageFunc_EmptyPathBypasses(t *testing.T) {
	store := newFakePageStore()
	handlerRuns := 0

	// The path func mirrors how filtered listings opt out of the cache.
	pathFor := func(request *http.Request) string {
		if request.URL.Query().Get("category") != "" {
			return ""
		}
		return "/gallery"
	}
	handler := CachePageFunc(store, pathFor)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		handlerRuns++
		writer.Write([]byte(`{"data":[]}`))
	}))

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?category=yagliboya", nil))
		assert.Empty(t, recorder.Header().Get(constants.HeaderXCache))
	}

	assert.Equal(t, 2, handlerRuns, "filtered requests must bypass the cache")
	assert.Empty(t, store.entries)
}
