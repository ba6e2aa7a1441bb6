// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

/*
Package cache provides the Redis-backed public page cache.

Public site pages (exhibition lists, the gallery, blog posts, the about
page) change only when an admin saves content, so their API responses are
cached in Redis keyed by site path. Admin mutations purge the affected
paths through the [Invalidator] interface, and a bounded TTL catches any
invalidation that slips through.

Key Taxonomy:

	cache:page:/               → home page payload
	cache:page:/exhibitions    → exhibitions page payload
	cache:page:/blog/some-slug → single blog post payload
*/
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atelierhq/atelier/internal/platform/constants"
)

// ErrMiss is returned by [PageCache.Get] when no entry exists for the path.
var ErrMiss = errors.New("cache: miss")

// Invalidator is the narrow interface the content services depend on to
// purge cached pages after a mutation. Keeping it minimal lets tests use a
// recording fake instead of Redis.
type Invalidator interface {
	Invalidate(ctx context.Context, sitePaths ...string) error
}

// PageCache stores rendered public page payloads in Redis.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewPageCache creates a PageCache with the default TTL.
func NewPageCache(client *redis.Client, logger *slog.Logger) *PageCache {
	return &PageCache{
		client: client,
		ttl:    constants.PageCacheTTL,
		logger: logger,
	}
}

// Get returns the cached payload for a site path, or [ErrMiss].
func (cache *PageCache) Get(ctx context.Context, sitePath string) ([]byte, error) {
	payload, err := cache.client.Get(ctx, keyFor(sitePath)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("cache: get %s: %w", sitePath, err)
	}
	return payload, nil
}

// Set stores the payload for a site path with the configured TTL.
func (cache *PageCache) Set(ctx context.Context, sitePath string, payload []byte) error {
	if err := cache.client.Set(ctx, keyFor(sitePath), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", sitePath, err)
	}
	return nil
}

// Invalidate implements [Invalidator]. It removes the entries for the given
// site paths. Purging a path that is not cached is a no-op.
func (cache *PageCache) Invalidate(ctx context.Context, sitePaths ...string) error {
	if len(sitePaths) == 0 {
		return nil
	}

	keys := make([]string, len(sitePaths))
	for i, sitePath := range sitePaths {
		keys[i] = keyFor(sitePath)
	}

	if err := cache.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: invalidate %v: %w", sitePaths, err)
	}

	cache.logger.Debug("page_cache_invalidated", slog.Any("paths", sitePaths))
	return nil
}

// keyFor maps a site path to its Redis key.
func keyFor(sitePath string) string {
	return constants.RedisPrefixPage + sitePath
}
