package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/starwars-api/internal/server"
)

const cacheKeyPrefix = "starwars:"

// referenceCache is a read-through Redis cache for characters and planets.
//
// Reference rows are never written by the API, so entries only expire by
// TTL. A nil client disables the cache; Redis failures fall back to the
// database and are only logged.
type referenceCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func newReferenceCache(s *server.Server) *referenceCache {
	return &referenceCache{
		client: s.Redis,
		ttl:    s.Config.Redis.CacheTTL,
		logger: s.Logger,
	}
}

// cached returns the value stored under key, or calls load and stores its result.
func cached[T any](ctx context.Context, c *referenceCache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.client == nil {
		return load(ctx)
	}
	key = cacheKeyPrefix + key

	var value T
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &value); jsonErr == nil {
			return value, nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding malformed cache entry")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if data, err := json.Marshal(value); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}

	return value, nil
}
