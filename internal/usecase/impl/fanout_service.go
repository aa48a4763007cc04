package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type fanoutService struct {
	sightingRepo repository.SightingRepository
	witnessRepo  repository.WitnessRepository
	alertRepo    repository.AlertRepository
	txManager    repository.TransactionManager
	index        service.DeviceIndex
	limiter      service.AlertRateLimiter
	dispatcher   *Dispatcher

	defaultRadiusKm float64
	maxRadiusKm     float64
	now             func() time.Time
	logger          *slog.Logger
}

// FanoutServiceParams holds dependencies for FanoutService, injected by Fx.
type FanoutServiceParams struct {
	fx.In

	SightingRepo repository.SightingRepository
	WitnessRepo  repository.WitnessRepository
	AlertRepo    repository.AlertRepository
	TxManager    repository.TransactionManager
	Index        service.DeviceIndex
	Limiter      service.AlertRateLimiter
	Dispatcher   *Dispatcher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewFanoutService creates the alert fanout use case.
func NewFanoutService(params FanoutServiceParams) usecase.FanoutUsecase {
	return &fanoutService{
		sightingRepo:    params.SightingRepo,
		witnessRepo:     params.WitnessRepo,
		alertRepo:       params.AlertRepo,
		txManager:       params.TxManager,
		index:           params.Index,
		limiter:         params.Limiter,
		dispatcher:      params.Dispatcher,
		defaultRadiusKm: params.Config.Fanout.DefaultRadiusKm,
		maxRadiusKm:     params.Config.Fanout.MaxRadiusKm,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// fanoutPlan is the outcome of policy filtering before anything is persisted.
type fanoutPlan struct {
	result  *entity.FanoutResult
	records []*entity.AlertDispatchRecord
	targets map[string]entity.NearbyDevice
}

func (srv *fanoutService) DispatchAlert(ctx context.Context, sightingID uuid.UUID, opts usecase.DispatchOptions) (*entity.FanoutResult, error) {
	defaultRadius := srv.defaultRadiusKm
	if opts.DefaultRadiusKm != nil {
		defaultRadius = *opts.DefaultRadiusKm
		if defaultRadius <= 0 || math.IsNaN(defaultRadius) || math.IsInf(defaultRadius, 0) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("default_radius_km must be a positive number")
		}
	}

	sighting, err := srv.sightingRepo.GetSightingLocation(ctx, sightingID)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, domainerrors.ErrSightingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load sighting")
	}

	witnessCount, err := srv.witnessRepo.CountWitnesses(ctx, sightingID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count witnesses")
	}
	level := entity.EscalationLevelFor(witnessCount)
	if opts.EscalationLevel.Rank() > level.Rank() {
		level = opts.EscalationLevel
	}

	alreadyAlerted, err := srv.alertRepo.FindAlertedDeviceIDs(ctx, sightingID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load alerted devices")
	}

	plan := srv.plan(ctx, sighting, level, defaultRadius, opts.EmergencyOverride, alreadyAlerted)

	fanout := &entity.AlertFanout{
		ID:                 plan.result.FanoutID,
		SightingID:         sightingID,
		RadiusKmUsed:       plan.result.RadiusKmUsed,
		TotalCandidates:    plan.result.TotalCandidates,
		SkippedRateLimited: plan.result.SkippedRateLimited,
		SkippedQuietHours:  plan.result.SkippedQuietHours,
		SkippedOptedOut:    plan.result.SkippedOptedOut,
		EscalationLevel:    level,
		CreatedAt:          srv.now(),
	}

	var stored []*entity.AlertDispatchRecord
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		alertRepo := txRepoFactory.NewAlertRepository()

		var createErr error
		stored, createErr = alertRepo.CreateDispatchRecords(ctx, plan.records)
		if createErr != nil {
			return errors.Wrap(createErr, "create dispatch records")
		}

		// A concurrent run may have claimed some pairs between the read above and this insert.
		fanout.TotalAlerted = len(stored)
		fanout.SkippedAlreadyAlerted = plan.result.SkippedAlreadyAlerted + len(plan.records) - len(stored)
		fanout.UpdatedAt = fanout.CreatedAt

		return errors.Wrap(alertRepo.CreateFanout(ctx, fanout), "create fanout summary")
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to record fanout")
	}

	plan.result.TotalAlerted = fanout.TotalAlerted
	plan.result.SkippedAlreadyAlerted = fanout.SkippedAlreadyAlerted

	jobs := make([]DispatchJob, 0, len(stored))
	for _, record := range stored {
		target := plan.targets[record.DeviceID]
		jobs = append(jobs, DispatchJob{
			Record:    record,
			PushToken: target.Device.PushToken,
			Payload:   entity.NewAlertPayload(sightingID, target.DistanceKm, target.BearingDeg, level),
		})
	}
	srv.dispatcher.Submit(ctx, jobs)

	srv.log(ctx).Info("[Fanout] Alert dispatch submitted",
		slog.String("sighting_id", sightingID.String()),
		slog.String("escalation_level", string(level)),
		slog.Float64("radius_km", plan.result.RadiusKmUsed),
		slog.Int("candidates", plan.result.TotalCandidates),
		slog.Int("alerted", plan.result.TotalAlerted),
		slog.Int("skipped_rate_limited", plan.result.SkippedRateLimited),
		slog.Int("skipped_quiet_hours", plan.result.SkippedQuietHours),
		slog.Int("skipped_opted_out", plan.result.SkippedOptedOut),
		slog.Int("skipped_already_alerted", plan.result.SkippedAlreadyAlerted),
	)

	return plan.result, nil
}

// plan applies the device filters in order: own radius, opt-out, quiet hours,
// already alerted, rate limit. Only the rate limiter has side effects.
func (srv *fanoutService) plan(
	ctx context.Context,
	sighting *entity.Sighting,
	level entity.EscalationLevel,
	defaultRadius float64,
	emergencyOverride bool,
	alreadyAlerted map[string]struct{},
) *fanoutPlan {
	multiplier := level.RadiusMultiplier()
	queryRadius := srv.capRadius(max(defaultRadius, srv.index.MaxAlertRadiusKm()) * multiplier)
	bypassQuietHours := sighting.EmergencyOverride || emergencyOverride || level.OverridesQuietHours()

	plan := &fanoutPlan{
		result: &entity.FanoutResult{
			FanoutID:        uuid.New(),
			SightingID:      sighting.ID,
			RadiusKmUsed:    queryRadius,
			EscalationLevel: level,
		},
		targets: make(map[string]entity.NearbyDevice),
	}
	result := plan.result
	now := srv.now()

	for _, candidate := range srv.index.QueryRadius(sighting.Latitude, sighting.Longitude, queryRadius) {
		device := candidate.Device
		if candidate.DistanceKm > srv.capRadius(device.EffectiveRadiusKm(defaultRadius)*multiplier) {
			continue
		}
		result.TotalCandidates++

		if !device.AlertsEnabled {
			result.SkippedOptedOut++

			continue
		}

		if !bypassQuietHours && srv.inQuietHours(ctx, &device, now) {
			result.SkippedQuietHours++

			continue
		}

		if _, ok := alreadyAlerted[device.DeviceID]; ok {
			result.SkippedAlreadyAlerted++

			continue
		}

		if !srv.allow(ctx, device.DeviceID, now) {
			result.SkippedRateLimited++

			continue
		}

		plan.targets[device.DeviceID] = candidate
		plan.records = append(plan.records, &entity.AlertDispatchRecord{
			ID:             uuid.New(),
			FanoutID:       result.FanoutID,
			SightingID:     sighting.ID,
			DeviceID:       device.DeviceID,
			DispatchTime:   now,
			DeliveryStatus: entity.DeliveryStatusPending,
			DistanceKm:     candidate.DistanceKm,
			BearingDeg:     candidate.BearingDeg,
			UpdatedAt:      now,
		})
	}

	return plan
}

func (srv *fanoutService) capRadius(radiusKm float64) float64 {
	if srv.maxRadiusKm > 0 && radiusKm > srv.maxRadiusKm {
		return srv.maxRadiusKm
	}

	return radiusKm
}

// inQuietHours treats an unreadable window as inactive so a bad timezone never silences alerts.
func (srv *fanoutService) inQuietHours(ctx context.Context, device *entity.DeviceLocation, now time.Time) bool {
	active, err := device.QuietHours.Active(now)
	if err != nil {
		srv.log(ctx).Warn("[Fanout] Ignoring invalid quiet hours",
			slog.String("device_id", device.DeviceID),
			slog.Any("error", err),
		)

		return false
	}

	return active
}

// allow fails open: a limiter outage must not suppress sighting alerts.
func (srv *fanoutService) allow(ctx context.Context, deviceID string, now time.Time) bool {
	ok, err := srv.limiter.Allow(ctx, deviceID, now)
	if err != nil {
		srv.log(ctx).Warn("[Fanout] Rate limiter unavailable, allowing alert",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)

		return true
	}

	return ok
}

func (srv *fanoutService) GetFanout(ctx context.Context, sightingID uuid.UUID) (*usecase.FanoutHistory, error) {
	runs, err := srv.alertRepo.ListFanouts(ctx, sightingID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list fanouts")
	}
	if len(runs) == 0 {
		return nil, domainerrors.ErrFanoutNotFound.WithDetails(fmt.Sprintf("sighting %s", sightingID))
	}

	history := &usecase.FanoutHistory{
		SightingID: sightingID,
		Runs:       runs,
	}
	for _, run := range runs {
		history.TotalAlerted += run.TotalAlerted
		history.Delivered += run.Delivered
		history.Failed += run.Failed
	}
	history.Pending = max(history.TotalAlerted-history.Delivered-history.Failed, 0)

	return history, nil
}
