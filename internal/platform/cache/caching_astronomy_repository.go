// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"astro_backend/internal/feature/astronomy/domain/entity"
	"astro_backend/internal/feature/astronomy/usecase"
)

// CachingAstronomyRepository decorates an AstronomyRepository with Redis
// caching. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Only successful
// upstream payloads are cached; failures are never cached.
type CachingAstronomyRepository struct {
	inner     usecase.AstronomyRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingAstronomyRepository decorates an AstronomyRepository with
// Redis caching. If ttl is 0, it defaults to 60 seconds. If namespace is
// empty, it uses "astronomy". The TTL is kept short because the payload
// carries the provider's current time and moving sun/moon angles.
func NewCachingAstronomyRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AstronomyRepository, namespace string) *CachingAstronomyRepository {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	if namespace == "" {
		namespace = "astronomy"
	}
	return &CachingAstronomyRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Fetch retrieves astronomy data, checking cache first then falling back
// to the upstream provider.
func (c *CachingAstronomyRepository) Fetch(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Fetch(ctx, lat, long)
	}

	key := c.cacheKey(lat, long)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Astronomy
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream provider
	out, err := c.inner.Fetch(ctx, lat, long)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a coordinate pair. Coordinates are
// rounded to 4 decimals (~11m) so nearby requests share an entry.
func (c *CachingAstronomyRepository) cacheKey(lat, long float64) string {
	return fmt.Sprintf("%s:%.4f:%.4f", c.namespace, lat, long)
}
