package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"weatherboard/internal/config"
	"weatherboard/internal/model"
	"weatherboard/internal/redis"
)

// redisCmdable is the subset of the Redis client used by the repository.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redisv9.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redisv9.StatusCmd
}

// Repository is the cache-aware geocoding access layer.
type Repository interface {
	Search(ctx context.Context, query string) ([]model.GeocodeCandidate, error)
}

type cachedRepository struct {
	redisClient redisCmdable
	client      Client
	expiration  time.Duration
}

// NewRepository wraps a geocoding client with a Redis cache. Results are
// keyed by the normalized query so repeated autocomplete lookups do not
// re-hit the provider.
func NewRepository(client Client) Repository {
	return &cachedRepository{
		redisClient: redis.GetClient(),
		client:      client,
		expiration:  config.GetGeocodeCacheExpiration(),
	}
}

func (r *cachedRepository) Search(ctx context.Context, query string) ([]model.GeocodeCandidate, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, model.ErrInvalidInput
	}

	cacheKey := "geocode:" + strings.ToLower(trimmed)
	if val, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var cached []model.GeocodeCandidate
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	candidates, err := r.client.Search(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(candidates); err == nil {
		_ = r.redisClient.Set(ctx, cacheKey, b, r.expiration).Err()
	}
	return candidates, nil
}
