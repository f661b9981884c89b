package populartimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/salonflow/dialog-server-go/internal/model"
)

const keyPrefix = "popular:"

// CacheKey builds the per-(salon, service) cache key. An empty serviceID is
// stored under "_" so salon-wide results get their own slot.
func CacheKey(salonID, serviceID string) string {
	if serviceID == "" {
		serviceID = "_"
	}
	return fmt.Sprintf("%s%s:%s", keyPrefix, salonID, serviceID)
}

// SalonFromKey extracts the salon id from a cache key, for sweeping.
func SalonFromKey(key string) string {
	rest := key[len(keyPrefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == ':' {
			return rest[:i]
		}
	}
	return rest
}

type cacheEntry struct {
	Buckets    []model.PopularTimeBucket `json:"buckets"`
	ComputedAt time.Time                 `json:"computedAt"`
}

// Cache stores computed bucket lists in Redis for a bounded period. Cache
// failures are logged and treated as misses: the analyzer must keep working
// without Redis.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, salonID, serviceID string) ([]model.PopularTimeBucket, bool) {
	val, err := c.rdb.Get(ctx, CacheKey(salonID, serviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("salonId", salonID).Msg("popular-times cache read failed")
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		log.Warn().Err(err).Str("salonId", salonID).Msg("dropping undecodable popular-times cache entry")
		_ = c.rdb.Del(ctx, CacheKey(salonID, serviceID)).Err()
		return nil, false
	}
	return entry.Buckets, true
}

func (c *Cache) Set(ctx context.Context, salonID, serviceID string, buckets []model.PopularTimeBucket) {
	data, err := json.Marshal(cacheEntry{Buckets: buckets, ComputedAt: time.Now().UTC()})
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, CacheKey(salonID, serviceID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("salonId", salonID).Msg("popular-times cache write failed")
	}
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// ComputedAt reports when the entry under key was computed, or nil when the
// entry is absent or unreadable.
func (c *Cache) ComputedAt(ctx context.Context, key string) (*time.Time, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entry cacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		return nil, nil
	}
	return &entry.ComputedAt, nil
}

// Keys lists all popular-times cache keys.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
