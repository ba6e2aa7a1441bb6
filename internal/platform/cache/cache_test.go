// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/constants"
)

func newMockedCache(t *testing.T) (*PageCache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPageCache(client, logger), mock
}

func TestPageCache_GetHit(t *testing.T) {
	cache, mock := newMockedCache(t)

	mock.ExpectGet("cache:page:/sergiler").SetVal(`{"exhibitions":[]}`)

	payload, err := cache.Get(context.Background(), "/sergiler")
	require.NoError(t, err)
	assert.JSONEq(t, `{"exhibitions":[]}`, string(payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageCache_GetMiss(t *testing.T) {
	cache, mock := newMockedCache(t)

	mock.ExpectGet("cache:page:/blog/unknown").RedisNil()

	_, err := cache.Get(context.Background(), "/blog/unknown")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageCache_Set(t *testing.T) {
	cache, mock := newMockedCache(t)

	mock.ExpectSet("cache:page:/", []byte(`{"ok":true}`), constants.PageCacheTTL).SetVal("OK")

	err := cache.Set(context.Background(), "/", []byte(`{"ok":true}`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageCache_Invalidate(t *testing.T) {
	cache, mock := newMockedCache(t)

	mock.ExpectDel("cache:page:/sergiler", "cache:page:/").SetVal(2)

	err := cache.Invalidate(context.Background(), "/sergiler", "/")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageCache_InvalidateNothing(t *testing.T) {
	cache, mock := newMockedCache(t)

	// No Redis command should be issued for an empty purge.
	err := cache.Invalidate(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
