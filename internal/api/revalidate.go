// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/atelierhq/atelier/internal/platform/apperr"
	"github.com/atelierhq/atelier/internal/platform/respond"
	"github.com/atelierhq/atelier/internal/platform/sec"
	"github.com/atelierhq/atelier/internal/platform/validate"
	"github.com/atelierhq/atelier/pkg/query"
)

// PagePurger purges cached page entries by site path.
type PagePurger interface {
	Invalidate(ctx context.Context, sitePaths ...string) error
}

// NewRevalidateHandler creates the GET /api/revalidate handler.
//
// # Contract
//
// The caller supplies `secret` and `path` query parameters. The secret is
// compared in constant time against the configured shared secret; a mismatch
// is 401 without detail. `path` accepts a comma-separated list so one call
// can purge every page touched by an edit. On success the response reports
// the purge time in Unix milliseconds.
func NewRevalidateHandler(secret string, purger PagePurger, logger *slog.Logger) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		providedSecret := request.URL.Query().Get("secret")
		if !sec.ConstantTimeEquals(providedSecret, secret) {
			respond.Error(writer, request, apperr.Unauthorized("Invalid revalidation secret"))
			return
		}

		sitePaths := query.StringSlice(request.URL.Query().Get("path"))
		if len(sitePaths) == 0 {
			respond.Error(writer, request, validate.RequiredError("path", "is required"))
			return
		}

		if err := purger.Invalidate(request.Context(), sitePaths...); err != nil {
			respond.Error(writer, request, apperr.Internal(err))
			return
		}

		logger.Info("page_revalidated", slog.Any("paths", sitePaths))
		respond.OK(writer, map[string]any{
			"revalidated": true,
			"now":         time.Now().UnixMilli(),
		})
	}
}
