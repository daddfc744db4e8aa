package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "cargotracker:transit-paths"

// CachingPathFinder keeps path finder answers in Redis for ttl, keyed by origin,
// destination and deadline. Redis failures are logged and the path finder is asked directly.
type CachingPathFinder struct {
	next   PathFinder
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachingPathFinder(next PathFinder, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachingPathFinder {
	return &CachingPathFinder{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "transit-path-cache"),
	}
}

func (c *CachingPathFinder) FindShortestPath(
	ctx context.Context,
	origin, destination string,
	deadline time.Time,
) ([]TransitPath, error) {
	key := cacheKey(origin, destination, deadline)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var paths []TransitPath
		if jsonErr := json.Unmarshal(cached, &paths); jsonErr == nil {
			return paths, nil
		}
		c.logger.WarnContext(ctx, "dropping unreadable cache entry", "cache.key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "transit path cache read failed", "cache.key", key, "error", err)
	}

	paths, err := c.next.FindShortestPath(ctx, origin, destination, deadline)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(paths)
	if err != nil {
		return nil, fmt.Errorf("encode transit paths: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "transit path cache write failed", "cache.key", key, "error", err)
	}

	return paths, nil
}

func cacheKey(origin, destination string, deadline time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%d", cacheKeyPrefix, origin, destination, deadline.UTC().Unix())
}
