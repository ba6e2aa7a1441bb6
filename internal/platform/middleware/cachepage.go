// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/atelierhq/atelier/internal/platform/constants"
	"github.com/atelierhq/atelier/internal/platform/ctxutil"
)

// # Page Caching

// PageStore is the read/write half of the page cache. The invalidation half
// lives behind the content services; this interface decouples the middleware
// from Redis the same way [TokenVerifier] decouples it from the auth service.
type PageStore interface {
	Get(ctx context.Context, sitePath string) ([]byte, error)
	Set(ctx context.Context, sitePath string, payload []byte) error
}

// CachePage serves a public GET route from the page cache under a fixed site
// path. On a miss the downstream handler runs and a 200 response is stored
// for the next reader; any other status passes through uncached.
//
// The site path MUST be one of the paths the owning service purges on
// mutation, otherwise stale payloads outlive their content until the TTL.
func CachePage(pages PageStore, sitePath string) func(http.Handler) http.Handler {
	return CachePageFunc(pages, func(*http.Request) string { return sitePath })
}

// CachePageFunc is [CachePage] with a per-request site path. Returning ""
// bypasses the cache entirely, which is how filtered variants of a listing
// stay uncached.
func CachePageFunc(pages PageStore, sitePath func(request *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			path := sitePath(request)
			if path == "" {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := request.Context()

			// ── 1. Serve From Cache ───────────────────────────────────────────
			// Any Get failure (miss or Redis trouble) degrades to a normal
			// handler run; the cache must never take a page down.
			if payload, err := pages.Get(ctx, path); err == nil {
				header := writer.Header()
				header.Set("Content-Type", "application/json; charset=utf-8")
				header.Set(constants.HeaderXCache, "HIT")
				writer.WriteHeader(http.StatusOK)
				_, _ = writer.Write(payload)
				return
			}

			// ── 2. Run The Handler, Capturing The Body ────────────────────────
			writer.Header().Set(constants.HeaderXCache, "MISS")
			recorder := &pageRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request)

			// ── 3. Store Successful Payloads ──────────────────────────────────
			if recorder.status != http.StatusOK {
				return
			}
			if err := pages.Set(ctx, path, recorder.body.Bytes()); err != nil {
				ctxutil.GetLogger(ctx).WarnContext(ctx, "page_cache_store_failed",
					slog.String("site_path", path),
					slog.Any("error", err),
				)
			}
		})
	}
}

// pageRecorder tees the response body so a copy can be cached after the
// handler finishes writing.
type pageRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (recorder *pageRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *pageRecorder) Write(payload []byte) (int, error) {
	recorder.body.Write(payload)
	return recorder.ResponseWriter.Write(payload)
}
