package forecast

import (
	"context"
	"encoding/json"
	"fmt"
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

// Repository is the cache-aware forecast access layer.
type Repository interface {
	Fetch(ctx context.Context, lat, lon float64, timezoneID string, unit model.UnitPreference) (*model.ForecastSnapshot, error)
}

type cachedRepository struct {
	redisClient redisCmdable
	client      Client
	expiration  time.Duration
}

// NewRepository wraps a forecast client with a Redis cache. Snapshots are
// keyed by coordinates and unit, so a unit toggle always reaches the
// provider for freshly converted values.
func NewRepository(client Client) Repository {
	return &cachedRepository{
		redisClient: redis.GetClient(),
		client:      client,
		expiration:  config.GetForecastCacheExpiration(),
	}
}

func cacheKey(lat, lon float64, unit model.UnitPreference) string {
	return fmt.Sprintf("forecast:%.4f:%.4f:%s", lat, lon, unit)
}

func (r *cachedRepository) Fetch(ctx context.Context, lat, lon float64, timezoneID string, unit model.UnitPreference) (*model.ForecastSnapshot, error) {
	key := cacheKey(lat, lon, unit)
	if val, err := r.redisClient.Get(ctx, key).Result(); err == nil {
		var cached model.ForecastSnapshot
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			cached.Cached = true
			return &cached, nil
		}
	}

	snapshot, err := r.client.Fetch(ctx, lat, lon, timezoneID, unit)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(snapshot); err == nil {
		_ = r.redisClient.Set(ctx, key, b, r.expiration).Err()
	}
	return snapshot, nil
}
