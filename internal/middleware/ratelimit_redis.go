package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitWindow    = 60 * time.Second
)

var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = 0
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    else
        resetAt = now + window
    end
    return {0, 0, resetAt}
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

local remaining = limit - count - 1
local resetAt = now + window

return {1, remaining, resetAt}
`)

// RedisRateLimiter enforces a sliding per-minute window per customer, keyed
// so one looping bot cannot exhaust the salon's capacity for everyone. Redis
// trouble fails open.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
}

func NewRedisRateLimiter(client *redis.Client, perMinute int) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, limit: perMinute}
}

// Allow reports whether the customer may send another message this window.
func (rl *RedisRateLimiter) Allow(ctx context.Context, salonID, customerID string) bool {
	now := time.Now().Unix()
	key := rateLimitKeyPrefix + salonID + ":" + customerID

	result, err := rateLimitScript.Run(ctx, rl.client, []string{key},
		now, int64(rateLimitWindow.Seconds()), rl.limit).Int64Slice()
	if err != nil {
		log.Warn().Err(err).
			Str("salonId", salonID).
			Msg("redis rate limit check failed, allowing request")
		return true
	}
	if len(result) != 3 {
		log.Warn().Str("salonId", salonID).Msg("unexpected redis rate limit result")
		return true
	}
	return result[0] == 1
}
