package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuietHours_Active(t *testing.T) {
	overnight := &QuietHours{Start: "22:00", End: "07:00", Timezone: "America/Los_Angeles"}
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{name: "late evening", at: time.Date(2026, 6, 1, 23, 30, 0, 0, la), expected: true},
		{name: "early morning", at: time.Date(2026, 6, 1, 6, 59, 0, 0, la), expected: true},
		{name: "window end is exclusive", at: time.Date(2026, 6, 1, 7, 0, 0, 0, la), expected: false},
		{name: "afternoon", at: time.Date(2026, 6, 1, 15, 0, 0, 0, la), expected: false},
		{name: "instant given in UTC", at: time.Date(2026, 6, 2, 6, 0, 0, 0, time.UTC), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, err := overnight.Active(tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, active)
		})
	}
}

func TestQuietHours_SameDayWindowAndEdgeCases(t *testing.T) {
	lunch := &QuietHours{Start: "12:00", End: "13:00"}

	active, err := lunch.Active(time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, active)

	active, err = lunch.Active(time.Date(2026, 1, 1, 13, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, active)

	var none *QuietHours
	active, err = none.Active(time.Now())
	require.NoError(t, err)
	assert.False(t, active)

	empty := &QuietHours{Start: "08:00", End: "08:00"}
	active, err = empty.Active(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, active)
}

func TestQuietHours_Validate(t *testing.T) {
	assert.NoError(t, (&QuietHours{Start: "22:00", End: "06:00", Timezone: "Europe/Berlin"}).Validate())
	assert.Error(t, (&QuietHours{Start: "25:00", End: "06:00"}).Validate())
	assert.Error(t, (&QuietHours{Start: "22:00", End: "06:00", Timezone: "Mars/Olympus"}).Validate())
}

func TestDeviceLocation_EffectiveRadiusKm(t *testing.T) {
	assert.InDelta(t, 25.0, (&DeviceLocation{}).EffectiveRadiusKm(25), 1e-9)
	assert.InDelta(t, 5.0, (&DeviceLocation{AlertRadiusKm: 5}).EffectiveRadiusKm(25), 1e-9)
}
