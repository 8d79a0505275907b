package openweather

import (
	"context"
	"strings"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/cache"
	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// CachedProvider wraps a WeatherProvider with an in-memory LRU cache of
// observations keyed by city.
type CachedProvider struct {
	inner   domain.WeatherProvider
	cache   *cache.LRU[string, domain.Observation]
	metrics *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a provider. Entries
// older than ttl are refetched.
func NewCachedProvider(inner domain.WeatherProvider, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		cache:   cache.New[string, domain.Observation](maxEntries, ttl, clock),
		metrics: metrics,
	}
}

func (c *CachedProvider) CurrentWeather(ctx context.Context, city string) (domain.Observation, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if obs, ok := c.cache.Get(key); ok {
		c.metrics.ProviderCache.WithLabelValues("hit").Inc()
		// The key is case-folded; report the city as this caller spelled it.
		obs.City = city
		return obs, nil
	}
	c.metrics.ProviderCache.WithLabelValues("miss").Inc()

	obs, err := c.inner.CurrentWeather(ctx, city)
	if err != nil {
		// Failures are never cached; the next render tries again.
		return obs, err
	}
	c.cache.Put(key, obs)
	return obs, nil
}
