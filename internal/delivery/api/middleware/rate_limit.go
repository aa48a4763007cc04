package middleware

import (
	"strconv"
	"sync"
	"time"

	"ufobeep/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// visitorIdleTTL is how long an idle client's bucket is kept
const visitorIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is a token bucket per client IP.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewIPRateLimiter allows ratePerSecond sustained requests per IP with the given burst.
func NewIPRateLimiter(ratePerSecond float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}

	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(ratePerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the IP may proceed now.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// evictIdle drops idle buckets at most once per TTL. Caller holds mu.
func (l *IPRateLimiter) evictIdle(now time.Time) {
	if now.Sub(l.lastSweep) < visitorIdleTTL {
		return
	}
	l.lastSweep = now

	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= visitorIdleTTL {
			delete(l.visitors, ip)
		}
	}
}

// Middleware rejects over-limit clients with 429.
func (l *IPRateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.Allow(c.RealIP()) {
			retryAfter := 1
			if l.rate > 0 {
				retryAfter = max(1, int(1/float64(l.rate)))
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests")
		}

		return next(c)
	}
}
