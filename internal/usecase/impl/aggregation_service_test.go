package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/errors"
	"ufobeep/internal/infra/persistence/memory"
	mockRepo "ufobeep/internal/mocks/repository"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAggregationService(t *testing.T) (usecase.AggregationUsecase, *memory.Store, uuid.UUID) {
	t.Helper()

	store := memory.NewStore()
	sightingID := uuid.New()
	store.SaveSighting(entity.Sighting{ID: sightingID, Latitude: 47.61, Longitude: -122.335, CreatedAt: fanoutNow})

	srv := NewAggregationService(AggregationServiceParams{
		SightingRepo: memory.NewSightingRepository(store),
		WitnessRepo:  memory.NewWitnessRepository(store),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return srv, store, sightingID
}

func storeWitness(t *testing.T, store *memory.Store, w entity.WitnessConfirmation) {
	t.Helper()

	_, err := memory.NewWitnessRepository(store).UpsertWitness(context.Background(), &w)
	require.NoError(t, err)
}

func TestAggregationService_GetAggregation_EndToEnd(t *testing.T) {
	srv, store, sightingID := createTestAggregationService(t)

	storeWitness(t, store, entity.WitnessConfirmation{
		SightingID:   sightingID,
		DeviceID:     "w1",
		Location:     entity.GeoLocation{Latitude: 47.61, Longitude: -122.33},
		BearingDeg:   ptr(270.0),
		DistanceKm:   ptr(0.4),
		StillVisible: true,
		ConfirmedAt:  fanoutNow,
	})
	storeWitness(t, store, entity.WitnessConfirmation{
		SightingID:   sightingID,
		DeviceID:     "w2",
		Location:     entity.GeoLocation{Latitude: 47.60, Longitude: -122.335},
		BearingDeg:   ptr(0.0),
		DistanceKm:   ptr(1.1),
		StillVisible: true,
		ConfirmedAt:  fanoutNow.Add(time.Minute),
	})
	storeWitness(t, store, entity.WitnessConfirmation{
		SightingID:   sightingID,
		DeviceID:     "w3",
		Location:     entity.GeoLocation{Latitude: 47.615, Longitude: -122.335},
		DistanceKm:   ptr(0.6),
		StillVisible: false,
		ConfirmedAt:  fanoutNow.Add(3 * time.Minute),
	})

	aggregation, err := srv.GetAggregation(context.Background(), sightingID)

	require.NoError(t, err)
	assert.Equal(t, 3, aggregation.WitnessCount)
	require.Len(t, aggregation.Witnesses, 3)
	assert.Equal(t, "w3", aggregation.Witnesses[0].DeviceID)
	assert.Equal(t, entity.EscalationUrgent, aggregation.EscalationLevel)

	require.NotNil(t, aggregation.Triangulation)
	assert.Equal(t, 2, aggregation.Triangulation.WitnessBearingsUsed)
	assert.InDelta(t, 47.61, aggregation.Triangulation.EstimatedLocation.Latitude, 1e-3)
	assert.InDelta(t, -122.335, aggregation.Triangulation.EstimatedLocation.Longitude, 1e-3)
	assert.Equal(t, entity.TriangulationMethodLeastSquares, aggregation.Triangulation.Method)

	require.NotNil(t, aggregation.Consensus)
	assert.Equal(t, 3, aggregation.Consensus.TotalWitnesses)
	assert.Equal(t, 2, aggregation.Consensus.StillVisibleCount)
	assert.InDelta(t, 66.7, aggregation.Consensus.VisibilityConsensusPercent, 1e-9)
	require.NotNil(t, aggregation.Consensus.AverageDistanceKm)
	assert.InDelta(t, 0.7, *aggregation.Consensus.AverageDistanceKm, 1e-9)
	assert.InDelta(t, 3.0, aggregation.Consensus.ConfirmationTimeSpanMinutes, 1e-9)

	total := 0
	for _, cell := range aggregation.HeatMapData {
		total += cell.WitnessCount
	}
	assert.Equal(t, 3, total)
}

func TestAggregationService_GetAggregation_NoWitnesses(t *testing.T) {
	srv, _, sightingID := createTestAggregationService(t)

	aggregation, err := srv.GetAggregation(context.Background(), sightingID)

	require.NoError(t, err)
	assert.Equal(t, 0, aggregation.WitnessCount)
	assert.NotNil(t, aggregation.Witnesses)
	assert.Empty(t, aggregation.Witnesses)
	assert.NotNil(t, aggregation.HeatMapData)
	assert.Nil(t, aggregation.Triangulation)
	assert.Nil(t, aggregation.Consensus)
	assert.Equal(t, entity.EscalationNormal, aggregation.EscalationLevel)
}

func TestAggregationService_GetAggregation_ListsMostRecent(t *testing.T) {
	srv, store, sightingID := createTestAggregationService(t)

	for i := range 60 {
		storeWitness(t, store, entity.WitnessConfirmation{
			SightingID:   sightingID,
			DeviceID:     fmt.Sprintf("w%02d", i),
			Location:     entity.GeoLocation{Latitude: 47.6, Longitude: -122.3},
			StillVisible: true,
			ConfirmedAt:  fanoutNow.Add(time.Duration(i) * time.Second),
		})
	}

	aggregation, err := srv.GetAggregation(context.Background(), sightingID)

	require.NoError(t, err)
	assert.Equal(t, 60, aggregation.WitnessCount)
	require.Len(t, aggregation.Witnesses, 50)
	assert.Equal(t, "w59", aggregation.Witnesses[0].DeviceID)
	assert.Equal(t, 60, aggregation.Consensus.TotalWitnesses)
	assert.Equal(t, entity.EscalationEmergency, aggregation.EscalationLevel)
}

func TestAggregationService_UnknownSighting(t *testing.T) {
	srv, _, _ := createTestAggregationService(t)

	_, err := srv.GetAggregation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSightingNotFound)

	_, err = srv.GetHeatMapGeoJSON(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSightingNotFound)
}

func TestAggregationService_GetHeatMapGeoJSON(t *testing.T) {
	srv, store, sightingID := createTestAggregationService(t)

	for i, lat := range []float64{47.6001, 47.6002, 47.6305} {
		storeWitness(t, store, entity.WitnessConfirmation{
			SightingID:  sightingID,
			DeviceID:    fmt.Sprintf("w%d", i),
			Location:    entity.GeoLocation{Latitude: lat, Longitude: -122.3001},
			ConfirmedAt: fanoutNow,
		})
	}

	fc, err := srv.GetHeatMapGeoJSON(context.Background(), sightingID)

	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, 2, fc.Features[0].Properties["witness_count"])
	assert.InDelta(t, 1.0, fc.Features[0].Properties["intensity"], 1e-9)
}

func TestAggregationService_WitnessReadFailure(t *testing.T) {
	sightingRepo := mockRepo.NewMockSightingRepository(t)
	witnessRepo := mockRepo.NewMockWitnessRepository(t)
	srv := NewAggregationService(AggregationServiceParams{
		SightingRepo: sightingRepo,
		WitnessRepo:  witnessRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()
	sightingID := uuid.New()
	dbErr := errors.New("statement timeout")

	sightingRepo.EXPECT().GetSightingLocation(ctx, sightingID).Return(&entity.Sighting{ID: sightingID}, nil)
	witnessRepo.EXPECT().ListWitnesses(ctx, sightingID, 0).Return(nil, dbErr)

	_, err := srv.GetAggregation(ctx, sightingID)

	assert.ErrorIs(t, err, dbErr)
}
