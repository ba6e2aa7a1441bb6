// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

/*
Package storage provides object storage for uploaded site images.

It abstracts the physical medium behind a small interface so the service
layer deals only in opaque object paths and public URLs. The current
implementation writes to the local filesystem and serves files through the
API's /uploads/ static route.

Path Conventions:

The object paths produced by the helper functions are load-bearing: existing
image URLs embedded in stored content depend on them, so they must never
change shape.

  - exhibition_covers/{exhibitionID}/{uuid}-{filename}
  - exhibition_galleries/{exhibitionID}/{uuid}-{filename}
  - paintings/{filename}
  - blog-images/{unixMillis}-{filename}
  - about/{filename}
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/platform/constants"
)

// ObjectStorage is the interface the service layer uses to persist and
// remove uploaded binary objects.
type ObjectStorage interface {
	// Save streams the reader's content to the given object path and returns
	// the public URL where the object can be fetched.
	Save(ctx context.Context, reader io.Reader, objectPath string) (string, error)

	// Delete removes the object referenced by the given public URL.
	// Deleting a URL that does not exist (or was not produced by this
	// storage) is not an error: removal is idempotent.
	Delete(ctx context.Context, publicURL string) error
}

// # Object Path Builders

// ExhibitionCoverPath builds the storage path for an exhibition cover image.
func ExhibitionCoverPath(exhibitionID, filename string) string {
	return path.Join(constants.StoragePrefixExhibitionCovers, exhibitionID, uniqueName(filename))
}

// ExhibitionGalleryPath builds the storage path for an exhibition gallery image.
func ExhibitionGalleryPath(exhibitionID, filename string) string {
	return path.Join(constants.StoragePrefixExhibitionGalleries, exhibitionID, uniqueName(filename))
}

// PaintingPath builds the storage path for a painting image.
//
// Painting filenames are NOT uniquified: re-uploading the same filename
// overwrites the previous object, which is the historical behavior the
// gallery relies on.
func PaintingPath(filename string) string {
	return path.Join(constants.StoragePrefixPaintings, sanitize(filename))
}

// BlogImagePath builds the storage path for a blog cover image. The
// millisecond timestamp prefix keeps repeated uploads of the same filename
// distinct.
func BlogImagePath(filename string) string {
	millis := time.Now().UnixMilli()
	return path.Join(constants.StoragePrefixBlogImages, fmt.Sprintf("%d-%s", millis, sanitize(filename)))
}

// AboutPath builds the storage path for the about-page portrait image.
func AboutPath(filename string) string {
	return path.Join(constants.StoragePrefixAbout, sanitize(filename))
}

// uniqueName prefixes the sanitized filename with a random UUID so repeated
// uploads of the same file never collide.
func uniqueName(filename string) string {
	return uuid.New().String() + "-" + sanitize(filename)
}

// sanitize strips any directory components from a client-supplied filename.
// Uploads must never be able to escape their prefix directory.
func sanitize(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "file"
	}
	return base
}
