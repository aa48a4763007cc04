package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/geo"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxDeviceIDLength = 255

type witnessService struct {
	sightingRepo repository.SightingRepository
	witnessRepo  repository.WitnessRepository
	alertRepo    repository.AlertRepository
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// WitnessServiceParams holds dependencies for WitnessService, injected by Fx.
type WitnessServiceParams struct {
	fx.In

	SightingRepo repository.SightingRepository
	WitnessRepo  repository.WitnessRepository
	AlertRepo    repository.AlertRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewWitnessService creates the witness confirmation use case.
func NewWitnessService(params WitnessServiceParams) usecase.WitnessUsecase {
	return &witnessService{
		sightingRepo: params.SightingRepo,
		witnessRepo:  params.WitnessRepo,
		alertRepo:    params.AlertRepo,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *witnessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *witnessService) Confirm(ctx context.Context, input usecase.ConfirmWitnessInput) (*entity.WitnessConfirmation, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	if err := validateConfirmation(deviceID, input); err != nil {
		return nil, err
	}

	sighting, err := srv.sightingRepo.GetSightingLocation(ctx, input.SightingID)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, domainerrors.ErrSightingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load sighting")
	}

	lat, lon := *input.Location.Latitude, *input.Location.Longitude
	distanceKm := geo.DistanceKm(lat, lon, sighting.Latitude, sighting.Longitude)
	witness := &entity.WitnessConfirmation{
		SightingID: input.SightingID,
		DeviceID:   deviceID,
		Location: entity.GeoLocation{
			Latitude:  lat,
			Longitude: lon,
			AltitudeM: input.Location.AltitudeM,
		},
		BearingDeg:   input.BearingDeg,
		DistanceKm:   &distanceKm,
		AccuracyM:    input.AccuracyM,
		StillVisible: *input.StillVisible,
		ConfirmedAt:  srv.now().UTC(),
	}

	created, err := srv.witnessRepo.UpsertWitness(ctx, witness)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, domainerrors.ErrSightingNotFound
		}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to store witness confirmation")
	}

	srv.log(ctx).Info("[Witness] Confirmation stored",
		slog.String("sighting_id", input.SightingID.String()),
		slog.String("device_id", deviceID),
		slog.Bool("created", created),
		slog.Bool("still_visible", witness.StillVisible),
	)

	if created {
		srv.escalateIfNeeded(ctx, sighting)
	}

	return witness, nil
}

// escalateIfNeeded publishes an escalation event when the sighting has reached a
// level that has neither been fanned out nor claimed by another confirmation.
// The claim makes exactly one caller publish per level, however the counts of
// concurrent confirmations interleave. Failures are logged: the confirmation
// itself is already stored.
func (srv *witnessService) escalateIfNeeded(ctx context.Context, sighting *entity.Sighting) {
	count, err := srv.witnessRepo.CountWitnesses(ctx, sighting.ID)
	if err != nil {
		srv.log(ctx).Error("[Witness] Failed to count witnesses for escalation",
			slog.String("sighting_id", sighting.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	level := entity.EscalationLevelFor(count)
	if level.Rank() <= entity.EscalationNormal.Rank() {
		return
	}

	done, err := srv.alertRepo.HasFanoutAtLevel(ctx, sighting.ID, level)
	if err != nil {
		srv.log(ctx).Error("[Witness] Failed to check previous escalations",
			slog.String("sighting_id", sighting.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	if done {
		return
	}

	claimed, err := srv.alertRepo.ClaimEscalation(ctx, sighting.ID, level)
	if err != nil {
		srv.log(ctx).Error("[Witness] Failed to claim escalation",
			slog.String("sighting_id", sighting.ID.String()),
			slog.String("escalation_level", string(level)),
			slog.Any("error", err),
		)

		return
	}
	if !claimed {
		return
	}

	event := &service.AlertEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		EventType:         constants.EventTypeEscalation,
		SightingID:        sighting.ID.String(),
		EscalationLevel:   string(level),
		WitnessCount:      count,
		EmergencyOverride: level.OverridesQuietHours(),
	}
	if err := srv.publisher.PublishAlertEvent(ctx, event); err != nil {
		srv.log(ctx).Error("[Witness] Failed to publish escalation event",
			slog.String("sighting_id", sighting.ID.String()),
			slog.String("escalation_level", string(level)),
			slog.Any("error", err),
		)
		if err := srv.alertRepo.ReleaseEscalation(ctx, sighting.ID, level); err != nil {
			srv.log(ctx).Error("[Witness] Failed to release escalation claim",
				slog.String("sighting_id", sighting.ID.String()),
				slog.String("escalation_level", string(level)),
				slog.Any("error", err),
			)
		}

		return
	}

	srv.log(ctx).Info("[Witness] Sighting escalated",
		slog.String("sighting_id", sighting.ID.String()),
		slog.String("escalation_level", string(level)),
		slog.Int("witness_count", count),
	)
}

func (srv *witnessService) GetStatus(ctx context.Context, sightingID uuid.UUID, deviceID string) (*entity.WitnessConfirmation, error) {
	witness, err := srv.witnessRepo.FindWitness(ctx, sightingID, strings.TrimSpace(deviceID))
	if err != nil {
		if errors.Is(err, repository.ErrWitnessNotFound) {
			return nil, domainerrors.ErrWitnessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load witness confirmation")
	}

	return witness, nil
}

func (srv *witnessService) ListWitnesses(ctx context.Context, sightingID uuid.UUID, limit int) ([]*entity.WitnessConfirmation, error) {
	witnesses, err := srv.witnessRepo.ListWitnesses(ctx, sightingID, limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list witness confirmations")
	}

	return witnesses, nil
}

func validateConfirmation(deviceID string, input usecase.ConfirmWitnessInput) error {
	if deviceID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device_id is required")
	}
	if len(deviceID) > maxDeviceIDLength {
		return domainerrors.ErrValidationFailed.WithDetails("device_id is too long")
	}
	loc := input.Location
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return domainerrors.ErrValidationFailed.WithDetails("location latitude and longitude are required")
	}
	if input.StillVisible == nil {
		return domainerrors.ErrValidationFailed.WithDetails("still_visible is required")
	}
	if !geo.ValidCoordinate(*loc.Latitude, *loc.Longitude) {
		return domainerrors.ErrInvalidLocation
	}
	if b := input.BearingDeg; b != nil && (!isFinite(*b) || *b < 0 || *b >= 360) {
		return domainerrors.ErrValidationFailed.WithDetails("bearing_deg must be within [0, 360)")
	}
	if a := input.AccuracyM; a != nil && (!isFinite(*a) || *a < 0) {
		return domainerrors.ErrValidationFailed.WithDetails("accuracy_m must be a non-negative number")
	}
	if alt := loc.AltitudeM; alt != nil && !isFinite(*alt) {
		return domainerrors.ErrValidationFailed.WithDetails("altitude_m must be a finite number")
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
