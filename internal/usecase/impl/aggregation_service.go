package impl

import (
	"context"
	"log/slog"
	"time"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/domain/triangulation"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

type aggregationService struct {
	sightingRepo repository.SightingRepository
	witnessRepo  repository.WitnessRepository
	engine       *triangulation.Engine

	maxListed          int
	heatMapCellSizeDeg float64
	now                func() time.Time
	logger             *slog.Logger
}

// AggregationServiceParams holds dependencies for AggregationService, injected by Fx.
type AggregationServiceParams struct {
	fx.In

	SightingRepo repository.SightingRepository
	WitnessRepo  repository.WitnessRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAggregationService creates the witness aggregation read model.
func NewAggregationService(params AggregationServiceParams) usecase.AggregationUsecase {
	return &aggregationService{
		sightingRepo: params.SightingRepo,
		witnessRepo:  params.WitnessRepo,
		engine: triangulation.NewEngine(triangulation.Config{
			MaxIntersectionKm: params.Config.Triangulation.MaxIntersectionKm,
			SpreadScaleKm:     params.Config.Triangulation.SpreadScaleKm,
		}),
		maxListed:          params.Config.Witness.MaxListed,
		heatMapCellSizeDeg: params.Config.Witness.HeatMapCellSizeDeg,
		now:                time.Now,
		logger:             params.Logger,
	}
}

func (srv *aggregationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *aggregationService) GetAggregation(ctx context.Context, sightingID uuid.UUID) (*entity.WitnessAggregation, error) {
	sighting, witnesses, err := srv.snapshot(ctx, sightingID)
	if err != nil {
		return nil, err
	}

	origin := entity.GeoLocation{Latitude: sighting.Latitude, Longitude: sighting.Longitude}

	listed := witnesses
	if srv.maxListed > 0 && len(listed) > srv.maxListed {
		listed = listed[:srv.maxListed]
	}

	aggregation := &entity.WitnessAggregation{
		SightingID:      sightingID,
		WitnessCount:    len(witnesses),
		Witnesses:       listed,
		Triangulation:   srv.engine.Triangulate(origin, witnesses),
		HeatMapData:     triangulation.HeatMap(witnesses, srv.heatMapCellSizeDeg),
		Consensus:       triangulation.Consensus(witnesses),
		EscalationLevel: entity.EscalationLevelFor(len(witnesses)),
		Timestamp:       srv.now().UTC(),
	}

	srv.log(ctx).Debug("[Witness] Aggregation computed",
		slog.String("sighting_id", sightingID.String()),
		slog.Int("witness_count", aggregation.WitnessCount),
		slog.Bool("triangulated", aggregation.Triangulation != nil),
	)

	return aggregation, nil
}

func (srv *aggregationService) GetHeatMapGeoJSON(ctx context.Context, sightingID uuid.UUID) (*geojson.FeatureCollection, error) {
	_, witnesses, err := srv.snapshot(ctx, sightingID)
	if err != nil {
		return nil, err
	}

	return triangulation.HeatMapFeatures(triangulation.HeatMap(witnesses, srv.heatMapCellSizeDeg)), nil
}

// snapshot reads every confirmation once; all derived values come from this copy.
func (srv *aggregationService) snapshot(ctx context.Context, sightingID uuid.UUID) (*entity.Sighting, []entity.WitnessConfirmation, error) {
	sighting, err := srv.sightingRepo.GetSightingLocation(ctx, sightingID)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, nil, domainerrors.ErrSightingNotFound
		}

		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to load sighting")
	}

	rows, err := srv.witnessRepo.ListWitnesses(ctx, sightingID, 0)
	if err != nil {
		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to list witness confirmations")
	}

	witnesses := make([]entity.WitnessConfirmation, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			witnesses = append(witnesses, *row)
		}
	}

	return sighting, witnesses, nil
}
