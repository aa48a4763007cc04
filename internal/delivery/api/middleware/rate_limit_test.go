package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_PerIPBuckets(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("198.51.100.1"))
	assert.True(t, limiter.Allow("198.51.100.1"))
	assert.False(t, limiter.Allow("198.51.100.1"))
	assert.True(t, limiter.Allow("198.51.100.2"))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("198.51.100.1"))
}

func TestIPRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("198.51.100.1")
	limiter.Allow("198.51.100.2")
	assert.Len(t, limiter.visitors, 2)

	now = now.Add(visitorIdleTTL + time.Second)
	limiter.Allow("198.51.100.3")

	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "198.51.100.3")
}
