// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"astro_backend/internal/feature/astronomy/adapters/ipgeolocation"
	"astro_backend/internal/feature/astronomy/usecase"
	"astro_backend/internal/platform/cache"
	infrahttp "astro_backend/internal/platform/http"
	"astro_backend/internal/shared/ratelimiter"
)

// ipgeoRequestsPerMinute caps calls to the upstream provider; the free
// tier allows 30k requests per month.
const ipgeoRequestsPerMinute = 60

// astronomyCacheTTL is the lifetime of cached astronomy payloads.
const astronomyCacheTTL = 60 * time.Second

// NewAstronomyRepository creates a fully configured astronomy data
// source: the ipgeolocation client behind a rate limiter, wrapped in a
// Redis read-through cache. rdb may be nil, in which case the cache is
// bypassed.
func NewAstronomyRepository(rdb *redisv9.Client) usecase.AstronomyRepository {
	cfg := ipgeolocation.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(ipgeoRequestsPerMinute, time.Minute)
	upstream := ipgeolocation.NewIPGeoAstronomy(cfg, httpClient, limiter)
	return cache.NewCachingAstronomyRepository(rdb, astronomyCacheTTL, upstream, "astronomy")
}
