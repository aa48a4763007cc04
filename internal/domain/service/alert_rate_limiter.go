package service

import (
	"context"
	"time"
)

// AlertRateLimiter caps how many alerts a device receives per rolling window.
type AlertRateLimiter interface {
	// Allow reserves one alert slot for the device at now. It returns false,
	// without reserving, when the device already reached the cap in the window
	// ending at now.
	Allow(ctx context.Context, deviceID string, now time.Time) (bool, error)
}
