// README: Redis client initialization and the geocode result cache.
package infra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// GeoCache stores geocoding results as JSON values under the resolver's
// query-derived keys. Place lookups for the same itinerary items repeat
// constantly, so even a short TTL cuts most upstream traffic.
type GeoCache struct {
	rdb *redis.Client
}

func NewGeoCache(rdb *redis.Client) *GeoCache {
	return &GeoCache{rdb: rdb}
}

// Get unmarshals the cached value into dst. The boolean reports a hit;
// a missing key is not an error.
func (c *GeoCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores v as JSON with the given TTL.
func (c *GeoCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}
