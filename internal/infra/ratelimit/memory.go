// Package ratelimit implements the per-device rolling-window alert cap.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"ufobeep/internal/domain/service"
)

const (
	DefaultMaxAlerts = 3
	DefaultWindow    = 15 * time.Minute
)

// MemoryLimiter keeps a sliding log of alert times per device. It is exact
// within one process and is the default when no Redis is configured.
type MemoryLimiter struct {
	maxAlerts int
	window    time.Duration
	devices   sync.Map // device id -> *deviceLog
}

type deviceLog struct {
	mu    sync.Mutex
	sends []time.Time
}

var _ service.AlertRateLimiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates a limiter allowing maxAlerts per window.
func NewMemoryLimiter(maxAlerts int, window time.Duration) *MemoryLimiter {
	if maxAlerts <= 0 {
		maxAlerts = DefaultMaxAlerts
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &MemoryLimiter{maxAlerts: maxAlerts, window: window}
}

func (l *MemoryLimiter) Allow(_ context.Context, deviceID string, now time.Time) (bool, error) {
	value, _ := l.devices.LoadOrStore(deviceID, &deviceLog{})
	dl := value.(*deviceLog)

	dl.mu.Lock()
	defer dl.mu.Unlock()

	dl.prune(now.Add(-l.window))
	if len(dl.sends) >= l.maxAlerts {
		return false, nil
	}
	dl.sends = append(dl.sends, now)

	return true, nil
}

// Prune forgets devices with no alerts inside the window ending at now.
func (l *MemoryLimiter) Prune(now time.Time) int {
	cutoff := now.Add(-l.window)
	removed := 0

	l.devices.Range(func(key, value any) bool {
		dl := value.(*deviceLog)
		dl.mu.Lock()
		dl.prune(cutoff)
		empty := len(dl.sends) == 0
		if empty {
			l.devices.Delete(key)
			removed++
		}
		dl.mu.Unlock()

		return true
	})

	return removed
}

// prune drops sends at or before cutoff; sends are kept in time order.
func (dl *deviceLog) prune(cutoff time.Time) {
	i := 0
	for i < len(dl.sends) && !dl.sends[i].After(cutoff) {
		i++
	}
	if i > 0 {
		dl.sends = append(dl.sends[:0], dl.sends[i:]...)
	}
}
