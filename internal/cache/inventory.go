package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stockroom/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	UserKeyPrefix = "user:%d"
	ItemKeyPrefix = "item:%d"
	ItemListKey   = "items:all"
)

const (
	UserTTL     = 5 * time.Minute
	ItemTTL     = 10 * time.Minute
	ItemListTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ItemKey(itemID uint) string {
	return fmt.Sprintf(ItemKeyPrefix, itemID)
}

// Aside implements the cache-aside pattern: look the key up in Redis first,
// fall back to load on a miss and populate the cache with the loaded value.
// dest must be a pointer; load is expected to fill it. Cache failures degrade
// to a plain load, never to an error for the caller.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	entity := entityFromKey(key)

	if client != nil {
		raw, err := client.Get(ctx, key).Result()
		if err == nil {
			if unmarshalErr := json.Unmarshal([]byte(raw), dest); unmarshalErr == nil {
				observability.CacheHits.WithLabelValues(entity).Inc()
				return nil
			}
			// Corrupt entry, drop it and reload
			client.Del(ctx, key)
		} else if !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues("get").Inc()
		}
		observability.CacheMisses.WithLabelValues(entity).Inc()
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

func entityFromKey(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateItem(ctx context.Context, itemID uint) {
	Invalidate(ctx, ItemKey(itemID))
	Invalidate(ctx, ItemListKey)
}
