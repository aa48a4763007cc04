package memory

import (
	"context"
	"testing"
	"time"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceLocationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceLocationRepository(NewStore())

	device := &entity.DeviceLocation{
		DeviceID:      "d1",
		Latitude:      47.6,
		Longitude:     -122.3,
		PushToken:     "token",
		QuietHours:    &entity.QuietHours{Start: "22:00", End: "07:00", Timezone: "UTC"},
		AlertsEnabled: true,
		LastUpdated:   baseTime,
	}
	require.NoError(t, repo.UpsertDeviceLocation(ctx, device))

	stale := &entity.DeviceLocation{DeviceID: "d0", LastUpdated: baseTime.Add(-48 * time.Hour)}
	require.NoError(t, repo.UpsertDeviceLocation(ctx, stale))

	got, err := repo.FindDeviceLocation(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "22:00", got.QuietHours.Start)

	active, err := repo.ListActiveDeviceLocations(ctx, baseTime.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "d1", active[0].DeviceID)

	require.NoError(t, repo.DeactivateDevice(ctx, "d1"))
	_, err = repo.FindDeviceLocation(ctx, "d1")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.DeactivateDevice(ctx, "d1"), repository.ErrDeviceNotFound)

	// Re-registering reactivates.
	require.NoError(t, repo.UpsertDeviceLocation(ctx, device))
	_, err = repo.FindDeviceLocation(ctx, "d1")
	assert.NoError(t, err)
}
