package impl

import (
	"context"
	"testing"
	"time"

	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/errors"
	mockRepo "ufobeep/internal/mocks/repository"
	mockSvc "ufobeep/internal/mocks/service"
	"ufobeep/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceLocationService(t *testing.T) (
	*deviceLocationService,
	*mockRepo.MockDeviceLocationRepository,
	*mockSvc.MockDeviceIndex,
) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceLocationRepository(t)
	index := mockSvc.NewMockDeviceIndex(t)

	srv := NewDeviceLocationService(DeviceLocationServiceParams{
		DeviceRepo: deviceRepo,
		Index:      index,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}).(*deviceLocationService)
	srv.now = func() time.Time { return fanoutNow }

	return srv, deviceRepo, index
}

func validLocationInput() usecase.UpdateDeviceLocationInput {
	return usecase.UpdateDeviceLocationInput{
		DeviceID:      "device-1",
		Latitude:      47.6,
		Longitude:     -122.3,
		PushToken:     "fcm-token",
		AlertRadiusKm: 10,
		QuietHours:    &entity.QuietHours{Start: "22:00", End: "07:00", Timezone: "America/Los_Angeles"},
	}
}

func TestDeviceLocationService_UpdateLocation(t *testing.T) {
	srv, deviceRepo, index := createTestDeviceLocationService(t)
	ctx := context.Background()

	deviceRepo.EXPECT().UpsertDeviceLocation(ctx, mock.Anything).Return(nil).Once()
	index.EXPECT().Upsert(mock.MatchedBy(func(d entity.DeviceLocation) bool {
		return d.DeviceID == "device-1" && d.AlertsEnabled && d.LastUpdated.Equal(fanoutNow)
	})).Once()

	device, err := srv.UpdateLocation(ctx, validLocationInput())

	require.NoError(t, err)
	assert.True(t, device.AlertsEnabled)
	assert.InDelta(t, 10.0, device.AlertRadiusKm, 1e-9)
}

func TestDeviceLocationService_UpdateLocation_OptOutIsKept(t *testing.T) {
	srv, deviceRepo, index := createTestDeviceLocationService(t)
	ctx := context.Background()
	input := validLocationInput()
	input.AlertsEnabled = ptr(false)

	deviceRepo.EXPECT().UpsertDeviceLocation(ctx, mock.Anything).Return(nil).Once()
	index.EXPECT().Upsert(mock.MatchedBy(func(d entity.DeviceLocation) bool { return !d.AlertsEnabled })).Once()

	device, err := srv.UpdateLocation(ctx, input)

	require.NoError(t, err)
	assert.False(t, device.AlertsEnabled)
}

func TestDeviceLocationService_UpdateLocation_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*usecase.UpdateDeviceLocationInput)
		wantErr error
	}{
		{name: "empty device id", modify: func(in *usecase.UpdateDeviceLocationInput) { in.DeviceID = "" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad latitude", modify: func(in *usecase.UpdateDeviceLocationInput) { in.Latitude = -90.5 }, wantErr: domainerrors.ErrInvalidLocation},
		{name: "missing token", modify: func(in *usecase.UpdateDeviceLocationInput) { in.PushToken = " " }, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative radius", modify: func(in *usecase.UpdateDeviceLocationInput) { in.AlertRadiusKm = -1 }, wantErr: domainerrors.ErrValidationFailed},
		{name: "radius above cap", modify: func(in *usecase.UpdateDeviceLocationInput) { in.AlertRadiusKm = 51 }, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad clock", modify: func(in *usecase.UpdateDeviceLocationInput) { in.QuietHours.Start = "25:00" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad timezone", modify: func(in *usecase.UpdateDeviceLocationInput) { in.QuietHours.Timezone = "Nowhere/Land" }, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := createTestDeviceLocationService(t)
			input := validLocationInput()
			tt.modify(&input)

			_, err := srv.UpdateLocation(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceLocationService_UpdateLocation_StoreFailureSkipsIndex(t *testing.T) {
	srv, deviceRepo, _ := createTestDeviceLocationService(t)
	ctx := context.Background()
	dbErr := errors.New("deadlock detected")

	deviceRepo.EXPECT().UpsertDeviceLocation(ctx, mock.Anything).Return(dbErr).Once()

	_, err := srv.UpdateLocation(ctx, validLocationInput())

	assert.ErrorIs(t, err, dbErr)
}

func TestDeviceLocationService_Deregister(t *testing.T) {
	srv, deviceRepo, index := createTestDeviceLocationService(t)
	ctx := context.Background()

	index.EXPECT().Remove("device-1").Twice()
	deviceRepo.EXPECT().DeactivateDevice(ctx, "device-1").Return(nil).Once()
	deviceRepo.EXPECT().DeactivateDevice(ctx, "device-1").Return(repository.ErrDeviceNotFound).Once()

	require.NoError(t, srv.Deregister(ctx, "device-1"))
	assert.ErrorIs(t, srv.Deregister(ctx, "device-1"), domainerrors.ErrDeviceNotFound)
}

func TestDeviceLocationService_SyncDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh device is indexed", func(t *testing.T) {
		srv, deviceRepo, index := createTestDeviceLocationService(t)
		device := &entity.DeviceLocation{DeviceID: "d1", LastUpdated: fanoutNow.Add(-time.Hour)}

		deviceRepo.EXPECT().FindDeviceLocation(ctx, "d1").Return(device, nil).Once()
		index.EXPECT().Upsert(*device).Once()

		require.NoError(t, srv.SyncDevice(ctx, "d1"))
	})

	t.Run("stale device is removed", func(t *testing.T) {
		srv, deviceRepo, index := createTestDeviceLocationService(t)

		deviceRepo.EXPECT().FindDeviceLocation(ctx, "d1").
			Return(&entity.DeviceLocation{DeviceID: "d1", LastUpdated: fanoutNow.Add(-48 * time.Hour)}, nil).Once()
		index.EXPECT().Remove("d1").Once()

		require.NoError(t, srv.SyncDevice(ctx, "d1"))
	})

	t.Run("deleted device is removed", func(t *testing.T) {
		srv, deviceRepo, index := createTestDeviceLocationService(t)

		deviceRepo.EXPECT().FindDeviceLocation(ctx, "d1").Return(nil, repository.ErrDeviceNotFound).Once()
		index.EXPECT().Remove("d1").Once()

		require.NoError(t, srv.SyncDevice(ctx, "d1"))
	})
}

func TestDeviceLocationService_RebuildIndex(t *testing.T) {
	srv, deviceRepo, index := createTestDeviceLocationService(t)
	ctx := context.Background()
	devices := []*entity.DeviceLocation{{DeviceID: "a"}, {DeviceID: "b"}}

	deviceRepo.EXPECT().ListActiveDeviceLocations(ctx, fanoutNow.Add(-24*time.Hour)).Return(devices, nil).Once()
	index.EXPECT().Rebuild([]entity.DeviceLocation{{DeviceID: "a"}, {DeviceID: "b"}}).Once()
	index.EXPECT().Len().Return(2).Once()

	count, err := srv.RebuildIndex(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDeviceLocationService_SweepStale(t *testing.T) {
	srv, _, index := createTestDeviceLocationService(t)

	index.EXPECT().RemoveStale(fanoutNow.Add(-24 * time.Hour)).Return([]string{"old-1", "old-2"}).Once()
	index.EXPECT().Len().Return(5).Once()

	assert.Equal(t, 2, srv.SweepStale(context.Background()))
}
