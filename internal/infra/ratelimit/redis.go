package ratelimit

import (
	"context"
	"strconv"
	"time"

	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "ufobeep:alerts:"

// slidingWindow trims the device's sorted set to the window, then admits the
// send only if the remaining count is under the cap. Running it as one script
// keeps check-and-reserve atomic across API replicas.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
  return 0
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, math.ceil(window / 1000000))
return 1
`)

// RedisLimiter shares the alert cap between processes through a Redis sorted
// set per device scored by send time.
type RedisLimiter struct {
	client    redis.Scripter
	maxAlerts int
	window    time.Duration
	keyPrefix string
}

var _ service.AlertRateLimiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a limiter on an existing client.
func NewRedisLimiter(client redis.Scripter, maxAlerts int, window time.Duration, keyPrefix string) *RedisLimiter {
	if maxAlerts <= 0 {
		maxAlerts = DefaultMaxAlerts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &RedisLimiter{
		client:    client,
		maxAlerts: maxAlerts,
		window:    window,
		keyPrefix: keyPrefix,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, deviceID string, now time.Time) (bool, error) {
	allowed, err := slidingWindow.Run(ctx, l.client,
		[]string{l.keyPrefix + deviceID},
		strconv.FormatInt(now.UnixNano(), 10),
		strconv.FormatInt(l.window.Nanoseconds(), 10),
		l.maxAlerts,
		uuid.NewString(),
	).Int()
	if err != nil {
		return false, errors.Wrapf(err, "failed to check alert rate for device %s", deviceID)
	}

	return allowed == 1, nil
}
