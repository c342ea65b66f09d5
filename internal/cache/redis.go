package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/redis/go-redis/v9"
)

// Reference list keys. Flights are never cached: their seats_left must be read fresh.
const (
	KeyManufacturers = "cache:manufacturers"
	KeyAircraftTypes = "cache:aircraft_types"
	KeyAirlines      = "cache:airlines"
	KeyAirports      = "cache:airports"
	KeyCrew          = "cache:crew"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetJSON decodes the cached value at key into dst. ok is false on a miss.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// AcquireSeatLock places an advisory hold on one seat. The ticket unique
// constraint stays the final arbiter; the hold only turns concurrent attempts
// away early.
func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID int64, row int, seat string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, SeatLockKey(flightID, row, seat), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID int64, row int, seat string) error {
	return c.client.Del(ctx, SeatLockKey(flightID, row, seat)).Err()
}

func SeatLockKey(flightID int64, row int, seat string) string {
	return fmt.Sprintf("lock:flight:%d:seat:%d%s", flightID, row, seat)
}

// AircraftKey and RouteKey include the filter so each filtered list caches separately.
func AircraftKey(filter string) string {
	return "cache:aircraft:" + filter
}

func RouteKey(filter string) string {
	return "cache:routes:" + filter
}

// AircraftPattern and RoutePattern match every filtered variant.
const (
	AircraftPattern = "cache:aircraft:*"
	RoutePattern    = "cache:routes:*"
)

// InvalidatePattern deletes every key matching pattern.
func (c *RedisCache) InvalidatePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Invalidate(ctx, keys...)
}
