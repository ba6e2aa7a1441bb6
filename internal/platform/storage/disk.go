// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DiskStorage is an [ObjectStorage] backed by the local filesystem.
//
// # Layout
//
// Objects are written under baseDir mirroring their object path, and exposed
// to clients as baseURL + "/" + objectPath. The API serves baseDir under the
// /uploads/ static route.
type DiskStorage struct {
	baseDir string
	baseURL string
	logger  *slog.Logger
}

// NewDiskStorage creates the base directory if needed and returns a ready
// storage instance.
func NewDiskStorage(baseDir, baseURL string, logger *slog.Logger) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create base directory %s: %w", baseDir, err)
	}

	return &DiskStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Save implements [ObjectStorage].
//
// The object is written to a temporary file first and renamed into place, so
// a request aborted mid-upload never leaves a truncated object at a public
// URL.
func (storage *DiskStorage) Save(ctx context.Context, reader io.Reader, objectPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(storage.baseDir, filepath.FromSlash(objectPath))

	// ── 1. Ensure the prefix directory exists ─────────────────────────────
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: failed to create directories: %w", err)
	}

	// ── 2. Stream into a temp file alongside the target ───────────────────
	tempFile, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: failed to create temp file: %w", err)
	}
	tempName := tempFile.Name()

	written, copyErr := io.Copy(tempFile, reader)
	closeErr := tempFile.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tempName)
		return "", fmt.Errorf("storage: failed to write object: %w", errors.Join(copyErr, closeErr))
	}

	// ── 3. Atomically move into place ─────────────────────────────────────
	if err := os.Rename(tempName, fullPath); err != nil {
		_ = os.Remove(tempName)
		return "", fmt.Errorf("storage: failed to finalize object: %w", err)
	}

	publicURL := storage.URLFor(objectPath)
	storage.logger.Debug("object_stored",
		slog.String("path", objectPath),
		slog.Int64("bytes", written),
	)

	return publicURL, nil
}

// Delete implements [ObjectStorage]. URLs outside this storage's base URL
// are ignored: content may reference images hosted elsewhere.
func (storage *DiskStorage) Delete(ctx context.Context, publicURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	objectPath, ok := storage.pathFor(publicURL)
	if !ok {
		storage.logger.Debug("object_delete_skipped_foreign_url", slog.String("url", publicURL))
		return nil
	}

	fullPath := filepath.Join(storage.baseDir, filepath.FromSlash(objectPath))
	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("storage: failed to delete object %s: %w", objectPath, err)
	}

	storage.logger.Debug("object_deleted", slog.String("path", objectPath))
	return nil
}

// URLFor maps an object path to the public URL clients use to fetch it.
func (storage *DiskStorage) URLFor(objectPath string) string {
	return storage.baseURL + "/" + strings.TrimLeft(objectPath, "/")
}

// BaseDir returns the root directory objects are stored under. The API
// mounts this directory on its static file route.
func (storage *DiskStorage) BaseDir() string {
	return storage.baseDir
}

// pathFor inverts [DiskStorage.URLFor]. It reports false for URLs that were
// not produced by this storage.
func (storage *DiskStorage) pathFor(publicURL string) (string, bool) {
	prefix := storage.baseURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}

	objectPath := strings.TrimPrefix(publicURL, prefix)

	// Reject anything that could resolve outside the base directory.
	cleaned := filepath.Clean(filepath.FromSlash(objectPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", false
	}

	return filepath.ToSlash(cleaned), true
}
