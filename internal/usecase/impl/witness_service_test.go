package impl

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"
	"ufobeep/internal/infra/persistence/memory"
	mockRepo "ufobeep/internal/mocks/repository"
	mockSvc "ufobeep/internal/mocks/service"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type witnessFixture struct {
	store     *memory.Store
	publisher *mockSvc.MockEventPublisher
	service   *witnessService
	sighting  entity.Sighting
	clock     time.Time
}

func createTestWitnessService(t *testing.T) *witnessFixture {
	t.Helper()

	store := memory.NewStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	sighting := entity.Sighting{ID: uuid.New(), Latitude: sightingLat, Longitude: sightingLon, CreatedAt: fanoutNow}
	store.SaveSighting(sighting)

	f := &witnessFixture{
		store:     store,
		publisher: publisher,
		sighting:  sighting,
		clock:     fanoutNow,
	}
	f.service = NewWitnessService(WitnessServiceParams{
		SightingRepo: memory.NewSightingRepository(store),
		WitnessRepo:  memory.NewWitnessRepository(store),
		AlertRepo:    memory.NewAlertRepository(store),
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	}).(*witnessService)
	f.service.now = func() time.Time {
		f.clock = f.clock.Add(time.Second)

		return f.clock
	}

	return f
}

func (f *witnessFixture) input(deviceID string, distanceKm float64) usecase.ConfirmWitnessInput {
	return usecase.ConfirmWitnessInput{
		SightingID: f.sighting.ID,
		DeviceID:   deviceID,
		Location: &usecase.WitnessLocation{
			Latitude:  ptr(kmNorth(sightingLat, distanceKm)),
			Longitude: ptr(sightingLon),
		},
		BearingDeg:   ptr(180.0),
		StillVisible: ptr(true),
	}
}

func TestWitnessService_Confirm(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	witness, err := f.service.Confirm(ctx, f.input("device-1", 2))

	require.NoError(t, err)
	assert.Equal(t, "device-1", witness.DeviceID)
	require.NotNil(t, witness.DistanceKm)
	assert.InDelta(t, 2.0, *witness.DistanceKm, 1e-6)
	assert.Equal(t, time.UTC, witness.ConfirmedAt.Location())
	assert.True(t, witness.ConfirmedAt.After(fanoutNow))

	stored, err := f.service.GetStatus(ctx, f.sighting.ID, "device-1")
	require.NoError(t, err)
	assert.Equal(t, witness.ConfirmedAt, stored.ConfirmedAt)
}

func TestWitnessService_Confirm_RepeatReplacesPrevious(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	_, err := f.service.Confirm(ctx, f.input("device-1", 2))
	require.NoError(t, err)

	second := f.input("device-1", 3)
	second.StillVisible = ptr(false)
	second.BearingDeg = nil
	_, err = f.service.Confirm(ctx, second)
	require.NoError(t, err)

	witnesses, err := f.service.ListWitnesses(ctx, f.sighting.ID, 0)
	require.NoError(t, err)
	require.Len(t, witnesses, 1)
	assert.False(t, witnesses[0].StillVisible)
	assert.Nil(t, witnesses[0].BearingDeg)
	assert.InDelta(t, 3.0, *witnesses[0].DistanceKm, 1e-6)
}

func TestWitnessService_Confirm_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*usecase.ConfirmWitnessInput)
		wantErr error
	}{
		{name: "missing device", modify: func(in *usecase.ConfirmWitnessInput) { in.DeviceID = "  " }, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing location", modify: func(in *usecase.ConfirmWitnessInput) { in.Location = nil }, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing latitude", modify: func(in *usecase.ConfirmWitnessInput) { in.Location.Latitude = nil }, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing still_visible", modify: func(in *usecase.ConfirmWitnessInput) { in.StillVisible = nil }, wantErr: domainerrors.ErrValidationFailed},
		{name: "latitude out of range", modify: func(in *usecase.ConfirmWitnessInput) { in.Location.Latitude = ptr(91.0) }, wantErr: domainerrors.ErrInvalidLocation},
		{name: "longitude out of range", modify: func(in *usecase.ConfirmWitnessInput) { in.Location.Longitude = ptr(-181.0) }, wantErr: domainerrors.ErrInvalidLocation},
		{name: "NaN latitude", modify: func(in *usecase.ConfirmWitnessInput) { in.Location.Latitude = ptr(math.NaN()) }, wantErr: domainerrors.ErrInvalidLocation},
		{name: "bearing 360", modify: func(in *usecase.ConfirmWitnessInput) { in.BearingDeg = ptr(360.0) }, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative bearing", modify: func(in *usecase.ConfirmWitnessInput) { in.BearingDeg = ptr(-0.5) }, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative accuracy", modify: func(in *usecase.ConfirmWitnessInput) { in.AccuracyM = ptr(-1.0) }, wantErr: domainerrors.ErrValidationFailed},
		{name: "infinite altitude", modify: func(in *usecase.ConfirmWitnessInput) { in.Location.AltitudeM = ptr(math.Inf(1)) }, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestWitnessService(t)
			in := f.input("device-1", 1)
			tt.modify(&in)

			_, err := f.service.Confirm(context.Background(), in)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWitnessService_Confirm_BoundaryValuesAccepted(t *testing.T) {
	f := createTestWitnessService(t)
	in := f.input("device-1", 1)
	in.BearingDeg = ptr(0.0)
	in.AccuracyM = ptr(0.0)

	_, err := f.service.Confirm(context.Background(), in)

	require.NoError(t, err)
}

func TestWitnessService_Confirm_UnknownSighting(t *testing.T) {
	f := createTestWitnessService(t)
	in := f.input("device-1", 1)
	in.SightingID = uuid.New()

	_, err := f.service.Confirm(context.Background(), in)

	assert.ErrorIs(t, err, domainerrors.ErrSightingNotFound)
}

func TestWitnessService_Confirm_PublishesEscalationOncePerLevel(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	var events []*service.AlertEvent
	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.AlertEvent) error {
			events = append(events, event)

			return nil
		})

	for i := range entity.EmergencyWitnessThreshold + 2 {
		_, err := f.service.Confirm(ctx, f.input(fmt.Sprintf("device-%02d", i), 1))
		require.NoError(t, err)
	}
	// Repeat confirmations never escalate.
	_, err := f.service.Confirm(ctx, f.input("device-00", 1))
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, constants.EventTypeEscalation, events[0].EventType)
	assert.Equal(t, string(entity.EscalationUrgent), events[0].EscalationLevel)
	assert.Equal(t, entity.UrgentWitnessThreshold, events[0].WitnessCount)
	assert.False(t, events[0].EmergencyOverride)
	assert.Equal(t, string(entity.EscalationEmergency), events[1].EscalationLevel)
	assert.Equal(t, entity.EmergencyWitnessThreshold, events[1].WitnessCount)
	assert.True(t, events[1].EmergencyOverride)
	assert.Equal(t, f.sighting.ID.String(), events[1].SightingID)
}

func TestWitnessService_Confirm_SkipsEscalationAlreadyFannedOut(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	require.NoError(t, memory.NewAlertRepository(f.store).CreateFanout(ctx, &entity.AlertFanout{
		ID:              uuid.New(),
		SightingID:      f.sighting.ID,
		EscalationLevel: entity.EscalationUrgent,
	}))

	for i := range entity.UrgentWitnessThreshold {
		_, err := f.service.Confirm(ctx, f.input(fmt.Sprintf("device-%d", i), 1))
		require.NoError(t, err)
	}
}

func TestWitnessService_Confirm_PublishFailureKeepsConfirmation(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found")).Once()

	for i := range entity.UrgentWitnessThreshold {
		_, err := f.service.Confirm(ctx, f.input(fmt.Sprintf("device-%d", i), 1))
		require.NoError(t, err)
	}

	count, err := memory.NewWitnessRepository(f.store).CountWitnesses(ctx, f.sighting.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UrgentWitnessThreshold, count)
}

func TestWitnessService_Confirm_PublishFailureReleasesClaim(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found")).Once()
	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.MatchedBy(func(event *service.AlertEvent) bool {
		return event.EscalationLevel == string(entity.EscalationUrgent) && event.WitnessCount == entity.UrgentWitnessThreshold+1
	})).Return(nil).Once()

	for i := range entity.UrgentWitnessThreshold + 2 {
		_, err := f.service.Confirm(ctx, f.input(fmt.Sprintf("device-%d", i), 1))
		require.NoError(t, err)
	}
}

func TestWitnessService_EscalationSurvivesInterleavedConfirms(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	var events []*service.AlertEvent
	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.AlertEvent) error {
			events = append(events, event)

			return nil
		})

	for _, id := range []string{"a", "b"} {
		_, err := f.service.Confirm(ctx, f.input(id, 1))
		require.NoError(t, err)
	}

	// c is stored but its escalation check runs only after d has fully confirmed,
	// so both checks see four witnesses.
	late := &entity.WitnessConfirmation{
		SightingID:   f.sighting.ID,
		DeviceID:     "c",
		Location:     entity.GeoLocation{Latitude: sightingLat, Longitude: sightingLon},
		StillVisible: true,
		ConfirmedAt:  fanoutNow,
	}
	created, err := memory.NewWitnessRepository(f.store).UpsertWitness(ctx, late)
	require.NoError(t, err)
	require.True(t, created)

	_, err = f.service.Confirm(ctx, f.input("d", 1))
	require.NoError(t, err)
	f.service.escalateIfNeeded(ctx, &f.sighting)

	require.Len(t, events, 1)
	assert.Equal(t, string(entity.EscalationUrgent), events[0].EscalationLevel)
	assert.Equal(t, 4, events[0].WitnessCount)
}

func TestWitnessService_Confirm_ConcurrentDistinctDevicesEscalateOncePerLevel(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	var mu sync.Mutex
	published := make(map[string]int)
	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.AlertEvent) error {
			mu.Lock()
			published[event.EscalationLevel]++
			mu.Unlock()

			return nil
		})
	clock := fanoutNow
	f.service.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Millisecond)

		return clock
	}

	var wg sync.WaitGroup
	for i := range entity.EmergencyWitnessThreshold + 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Confirm(ctx, f.input(fmt.Sprintf("device-%02d", i), 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, published[string(entity.EscalationEmergency)])
	assert.LessOrEqual(t, published[string(entity.EscalationUrgent)], 1)
}

func TestWitnessService_Confirm_ConcurrentSameDeviceCountsOnce(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()

	var mu sync.Mutex
	clock := fanoutNow
	f.service.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Millisecond)

		return clock
	}

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := f.input("device-1", float64(i%5)+1)
			_, err := f.service.Confirm(ctx, in)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	witnesses, err := f.service.ListWitnesses(ctx, f.sighting.ID, 0)
	require.NoError(t, err)
	assert.Len(t, witnesses, 1)
}

func TestWitnessService_GetStatus_NotFound(t *testing.T) {
	f := createTestWitnessService(t)

	_, err := f.service.GetStatus(context.Background(), f.sighting.ID, "nobody")

	assert.ErrorIs(t, err, domainerrors.ErrWitnessNotFound)
}

func TestWitnessService_ListWitnesses_NewestFirst(t *testing.T) {
	f := createTestWitnessService(t)
	ctx := context.Background()
	f.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	for _, id := range []string{"a", "b", "c"} {
		_, err := f.service.Confirm(ctx, f.input(id, 1))
		require.NoError(t, err)
	}

	witnesses, err := f.service.ListWitnesses(ctx, f.sighting.ID, 2)

	require.NoError(t, err)
	require.Len(t, witnesses, 2)
	assert.Equal(t, "c", witnesses[0].DeviceID)
	assert.Equal(t, "b", witnesses[1].DeviceID)
}

func validConfirmInput(sightingID uuid.UUID, deviceID string) usecase.ConfirmWitnessInput {
	return usecase.ConfirmWitnessInput{
		SightingID:   sightingID,
		DeviceID:     deviceID,
		Location:     &usecase.WitnessLocation{Latitude: ptr(47.6), Longitude: ptr(-122.3)},
		StillVisible: ptr(true),
	}
}

func TestWitnessService_RepositoryFailures(t *testing.T) {
	sightingRepo := mockRepo.NewMockSightingRepository(t)
	witnessRepo := mockRepo.NewMockWitnessRepository(t)
	srv := NewWitnessService(WitnessServiceParams{
		SightingRepo: sightingRepo,
		WitnessRepo:  witnessRepo,
		AlertRepo:    mockRepo.NewMockAlertRepository(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()
	sightingID := uuid.New()
	dbErr := errors.New("connection refused")

	t.Run("sighting lookup", func(t *testing.T) {
		sightingRepo.EXPECT().GetSightingLocation(ctx, sightingID).Return(nil, dbErr).Once()

		_, err := srv.Confirm(ctx, validConfirmInput(sightingID, "d1"))

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("upsert loses sighting", func(t *testing.T) {
		sightingRepo.EXPECT().GetSightingLocation(ctx, sightingID).Return(&entity.Sighting{ID: sightingID}, nil).Once()
		witnessRepo.EXPECT().UpsertWitness(ctx, mock.Anything).Return(false, repository.ErrSightingNotFound).Once()

		_, err := srv.Confirm(ctx, validConfirmInput(sightingID, "d1"))

		assert.ErrorIs(t, err, domainerrors.ErrSightingNotFound)
	})

	t.Run("list", func(t *testing.T) {
		witnessRepo.EXPECT().ListWitnesses(ctx, sightingID, 10).Return(nil, dbErr).Once()

		_, err := srv.ListWitnesses(ctx, sightingID, 10)

		assert.ErrorIs(t, err, dbErr)
	})
}
