// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// directory.go provides a Valkey-backed cache for composed directory
// pages. Entries are keyed by the (locationSlug, categorySlug) pair, so
// invalidation is scoped to a single page and reseeding one category
// never touches unrelated pages.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"citydex/internal/models"
)

const (
	// dirKeyPrefix is the Valkey key prefix for cached directory pages.
	dirKeyPrefix = "dir:"

	// DefaultDirectoryTTL is how long a composed page stays cached.
	DefaultDirectoryTTL = 5 * time.Minute
)

// DirectoryCache stores composed directory pages in Valkey, JSON-encoded.
// All failures degrade to cache misses; the cache never fails a request.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDirectoryCache creates a directory page cache backed by the given
// Valkey client.
func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	if ttl == 0 {
		ttl = DefaultDirectoryTTL
	}
	return &DirectoryCache{client: client, ttl: ttl}
}

// Key returns the cache key for one (location, category) page.
func Key(locationSlug, categorySlug string) string {
	return dirKeyPrefix + locationSlug + ":" + categorySlug
}

// Get retrieves the cached page for a slug pair. Returns false on miss or
// on any decode/backend error.
func (dc *DirectoryCache) Get(ctx context.Context, locationSlug, categorySlug string) (*models.DirectoryPage, bool) {
	key := Key(locationSlug, categorySlug)
	val, err := dc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("directory cache get error", "key", key, "error", err)
		return nil, false
	}

	var page models.DirectoryPage
	if err := json.Unmarshal(val, &page); err != nil {
		slog.Warn("directory cache decode error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("directory cache hit", "key", key)
	return &page, true
}

// Set stores a composed page with the configured TTL.
func (dc *DirectoryCache) Set(ctx context.Context, page *models.DirectoryPage) {
	key := Key(page.Location.Slug, page.Category.Slug)
	val, err := json.Marshal(page)
	if err != nil {
		slog.Warn("directory cache encode error", "key", key, "error", err)
		return
	}
	if err := dc.client.Set(ctx, key, val, dc.ttl).Err(); err != nil {
		slog.Warn("directory cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single page from the cache by its slug pair.
func (dc *DirectoryCache) Invalidate(ctx context.Context, locationSlug, categorySlug string) {
	key := Key(locationSlug, categorySlug)
	if err := dc.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("directory cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("directory cache invalidated", "key", key)
}

// InvalidateCategory removes every cached page for one category by
// scanning for its key suffix. Used when a category's reference data or
// listings are reloaded.
func (dc *DirectoryCache) InvalidateCategory(ctx context.Context, categorySlug string) {
	dc.scanDelete(ctx, dirKeyPrefix+"*:"+categorySlug)
}

// InvalidateAll removes all cached directory pages. Used after a full
// reseed, since every page could be affected.
func (dc *DirectoryCache) InvalidateAll(ctx context.Context) {
	dc.scanDelete(ctx, dirKeyPrefix+"*")
}

func (dc *DirectoryCache) scanDelete(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := dc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("directory cache scan error", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := dc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("directory cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("directory cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
