package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/geo"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"go.uber.org/fx"
)

type deviceLocationService struct {
	deviceRepo  repository.DeviceLocationRepository
	index       service.DeviceIndex
	maxRadiusKm float64
	staleAfter  time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// DeviceLocationServiceParams holds dependencies for DeviceLocationService, injected by Fx.
type DeviceLocationServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceLocationRepository
	Index      service.DeviceIndex
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeviceLocationService creates the device registration use case.
func NewDeviceLocationService(params DeviceLocationServiceParams) usecase.DeviceLocationUsecase {
	return &deviceLocationService{
		deviceRepo:  params.DeviceRepo,
		index:       params.Index,
		maxRadiusKm: params.Config.Fanout.MaxRadiusKm,
		staleAfter:  params.Config.GeoIndex.StaleAfter,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *deviceLocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *deviceLocationService) UpdateLocation(ctx context.Context, input usecase.UpdateDeviceLocationInput) (*entity.DeviceLocation, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" || len(deviceID) > maxDeviceIDLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_id must be 1-255 characters")
	}
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidLocation
	}
	if strings.TrimSpace(input.PushToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("push_token is required")
	}
	if !isFinite(input.AlertRadiusKm) || input.AlertRadiusKm < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("alert_radius_km must be a non-negative number")
	}
	if srv.maxRadiusKm > 0 && input.AlertRadiusKm > srv.maxRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WithDetails("alert_radius_km exceeds the maximum alert radius")
	}
	if err := input.QuietHours.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	alertsEnabled := true
	if input.AlertsEnabled != nil {
		alertsEnabled = *input.AlertsEnabled
	}

	device := &entity.DeviceLocation{
		DeviceID:      deviceID,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		PushToken:     input.PushToken,
		QuietHours:    input.QuietHours,
		AlertRadiusKm: input.AlertRadiusKm,
		AlertsEnabled: alertsEnabled,
		LastUpdated:   srv.now().UTC(),
	}

	if err := srv.deviceRepo.UpsertDeviceLocation(ctx, device); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to store device location")
	}
	srv.index.Upsert(*device)

	return device, nil
}

func (srv *deviceLocationService) Deregister(ctx context.Context, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	srv.index.Remove(deviceID)

	if err := srv.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate device")
	}

	srv.log(ctx).Info("[GeoIndex] Device deregistered", slog.String("device_id", deviceID))

	return nil
}

func (srv *deviceLocationService) SyncDevice(ctx context.Context, deviceID string) error {
	device, err := srv.deviceRepo.FindDeviceLocation(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			srv.index.Remove(deviceID)

			return nil
		}

		return errors.Wrapf(err, "load device %s", deviceID)
	}

	if srv.isStale(device.LastUpdated) {
		srv.index.Remove(deviceID)

		return nil
	}
	srv.index.Upsert(*device)

	return nil
}

func (srv *deviceLocationService) RebuildIndex(ctx context.Context) (int, error) {
	since := time.Time{}
	if srv.staleAfter > 0 {
		since = srv.now().Add(-srv.staleAfter)
	}

	rows, err := srv.deviceRepo.ListActiveDeviceLocations(ctx, since)
	if err != nil {
		return 0, errors.Wrap(err, "list active devices")
	}

	devices := make([]entity.DeviceLocation, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, *row)
	}
	srv.index.Rebuild(devices)

	srv.log(ctx).Info("[GeoIndex] Index rebuilt",
		slog.Int("devices", srv.index.Len()),
		slog.Time("since", since),
	)

	return len(devices), nil
}

func (srv *deviceLocationService) SweepStale(ctx context.Context) int {
	if srv.staleAfter <= 0 {
		return 0
	}

	removed := srv.index.RemoveStale(srv.now().Add(-srv.staleAfter))
	if len(removed) > 0 {
		srv.log(ctx).Info("[GeoIndex] Stale devices dropped",
			slog.Int("removed", len(removed)),
			slog.Int("remaining", srv.index.Len()),
		)
	}

	return len(removed)
}

func (srv *deviceLocationService) isStale(lastUpdated time.Time) bool {
	return srv.staleAfter > 0 && lastUpdated.Before(srv.now().Add(-srv.staleAfter))
}
