// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *DiskStorage {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	disk, err := NewDiskStorage(t.TempDir(), "/uploads", logger)
	require.NoError(t, err)
	return disk
}

func TestDiskStorage_SaveAndDelete(t *testing.T) {
	disk := newTestStorage(t)
	ctx := context.Background()

	url, err := disk.Save(ctx, strings.NewReader("image-bytes"), "paintings/sunset.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/paintings/sunset.jpg", url)

	// The object must exist on disk with the streamed content.
	data, err := os.ReadFile(filepath.Join(disk.BaseDir(), "paintings", "sunset.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	// Deleting by public URL removes the object.
	require.NoError(t, disk.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(disk.BaseDir(), "paintings", "sunset.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStorage_SaveOverwritesExisting(t *testing.T) {
	disk := newTestStorage(t)
	ctx := context.Background()

	_, err := disk.Save(ctx, strings.NewReader("first"), "paintings/same.jpg")
	require.NoError(t, err)

	_, err = disk.Save(ctx, strings.NewReader("second"), "paintings/same.jpg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(disk.BaseDir(), "paintings", "same.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestDiskStorage_DeleteIsIdempotent(t *testing.T) {
	disk := newTestStorage(t)
	ctx := context.Background()

	// Never stored: must not error.
	assert.NoError(t, disk.Delete(ctx, "/uploads/paintings/ghost.jpg"))
}

func TestDiskStorage_DeleteIgnoresForeignURLs(t *testing.T) {
	disk := newTestStorage(t)
	ctx := context.Background()

	// Content can reference externally hosted images; those are not ours to
	// delete.
	assert.NoError(t, disk.Delete(ctx, "https://cdn.example.com/x.jpg"))
}

func TestDiskStorage_DeleteRejectsTraversal(t *testing.T) {
	disk := newTestStorage(t)
	ctx := context.Background()

	outside := filepath.Join(filepath.Dir(disk.BaseDir()), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, disk.Delete(ctx, "/uploads/../victim.txt"))

	// The file outside the base directory must survive.
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestDiskStorage_SaveCancelledContext(t *testing.T) {
	disk := newTestStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := disk.Save(ctx, strings.NewReader("late"), "paintings/late.jpg")
	assert.Error(t, err)
}

func TestObjectPaths(t *testing.T) {
	t.Run("exhibition_cover_is_uniquified", func(t *testing.T) {
		p1 := ExhibitionCoverPath("ex-1", "cover.jpg")
		p2 := ExhibitionCoverPath("ex-1", "cover.jpg")

		assert.True(t, strings.HasPrefix(p1, "exhibition_covers/ex-1/"))
		assert.True(t, strings.HasSuffix(p1, "-cover.jpg"))
		assert.NotEqual(t, p1, p2)
	})

	t.Run("gallery_prefix", func(t *testing.T) {
		p := ExhibitionGalleryPath("ex-1", "room.jpg")
		assert.True(t, strings.HasPrefix(p, "exhibition_galleries/ex-1/"))
	})

	t.Run("painting_keeps_filename", func(t *testing.T) {
		assert.Equal(t, "paintings/sunset.jpg", PaintingPath("sunset.jpg"))
	})

	t.Run("blog_image_has_millis_prefix", func(t *testing.T) {
		p := BlogImagePath("cover.png")
		assert.True(t, strings.HasPrefix(p, "blog-images/"))
		assert.True(t, strings.HasSuffix(p, "-cover.png"))
	})

	t.Run("about_prefix", func(t *testing.T) {
		assert.Equal(t, "about/portrait.jpg", AboutPath("portrait.jpg"))
	})

	t.Run("filenames_are_sanitized", func(t *testing.T) {
		assert.Equal(t, "paintings/evil.jpg", PaintingPath("../../evil.jpg"))
		assert.Equal(t, "paintings/file", PaintingPath(""))
	})
}
