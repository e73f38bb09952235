// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// screens.go provides a Redis-backed cache for published screen payloads.
// The web preview polls an app's screens on every load; caching the
// validated JSON keeps those reads off PostgreSQL. Entries are
// invalidated whenever the editor saves.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// screensKeyPrefix is the Redis key prefix for cached screen payloads.
	screensKeyPrefix = "screens:"

	// DefaultScreensTTL bounds staleness if an invalidation is ever missed.
	DefaultScreensTTL = 10 * time.Minute
)

// ScreensCache manages cached editor screen JSON in Redis, keyed by app slug.
type ScreensCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScreensCache creates a screens cache backed by the given Redis client.
func NewScreensCache(client *redis.Client, ttl time.Duration) *ScreensCache {
	if ttl == 0 {
		ttl = DefaultScreensTTL
	}
	return &ScreensCache{client: client, ttl: ttl}
}

// Get retrieves the cached screen payload for an app slug.
func (sc *ScreensCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, screensKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("screens cache get error", "slug", slug, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a validated screen payload for an app slug.
func (sc *ScreensCache) Set(ctx context.Context, slug string, payload []byte) {
	if err := sc.client.Set(ctx, screensKeyPrefix+slug, payload, sc.ttl).Err(); err != nil {
		slog.Warn("screens cache set error", "slug", slug, "error", err)
	}
}

// Invalidate drops the cached payload for an app slug. Called after every
// editor save so the preview never serves stale screens past one poll.
func (sc *ScreensCache) Invalidate(ctx context.Context, slug string) {
	if err := sc.client.Del(ctx, screensKeyPrefix+slug).Err(); err != nil {
		slog.Warn("screens cache invalidate error", "slug", slug, "error", err)
	}
}
