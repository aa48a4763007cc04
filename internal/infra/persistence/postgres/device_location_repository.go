package postgres

import (
	"context"
	"time"

	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listBatchSize = 1000

// deviceLocationRepository implements the repository.DeviceLocationRepository interface.
type deviceLocationRepository struct {
	db *gorm.DB
}

// NewDeviceLocationRepository is the constructor for deviceLocationRepository.
func NewDeviceLocationRepository(db *gorm.DB) repository.DeviceLocationRepository {
	return &deviceLocationRepository{
		db: db,
	}
}

// UpsertDeviceLocation inserts the device or replaces its location and preferences.
func (repo *deviceLocationRepository) UpsertDeviceLocation(ctx context.Context, device *entity.DeviceLocation) error {
	deviceM := fromDeviceLocationDomain(device)
	deviceM.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latitude", "longitude", "push_token",
				"quiet_start", "quiet_end", "quiet_timezone",
				"alert_radius_km", "alerts_enabled", "is_active",
				"last_updated", "updated_at",
			}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidLocation.WrapMessage("device location out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device location")
	}

	return nil
}

// FindDeviceLocation retrieves an active device by its client identifier.
func (repo *deviceLocationRepository) FindDeviceLocation(ctx context.Context, deviceID string) (*entity.DeviceLocation, error) {
	var deviceM model.DeviceLocationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND is_active = ?", deviceID, true).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device location")
	}

	return toDeviceLocationDomain(&deviceM), nil
}

// ListActiveDeviceLocations loads the devices the GeoIndex is rebuilt from.
func (repo *deviceLocationRepository) ListActiveDeviceLocations(ctx context.Context, since time.Time) ([]*entity.DeviceLocation, error) {
	var batch []*model.DeviceLocationModel
	devices := make([]*entity.DeviceLocation, 0)

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND last_updated >= ?", true, since).
		FindInBatches(&batch, listBatchSize, func(_ *gorm.DB, _ int) error {
			for _, deviceM := range batch {
				devices = append(devices, toDeviceLocationDomain(deviceM))
			}

			return nil
		}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active device locations")
	}

	return devices, nil
}

// DeactivateDevice marks a device inactive so it is no longer indexed or alerted.
func (repo *deviceLocationRepository) DeactivateDevice(ctx context.Context, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceLocationModel{}).
		Where("device_id = ? AND is_active = ?", deviceID, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// toDeviceLocationDomain converts a GORM DeviceLocationModel to a domain DeviceLocation entity.
func toDeviceLocationDomain(data *model.DeviceLocationModel) *entity.DeviceLocation {
	if data == nil {
		return nil
	}

	device := &entity.DeviceLocation{
		DeviceID:      data.DeviceID,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		PushToken:     data.PushToken,
		AlertRadiusKm: data.AlertRadiusKm,
		AlertsEnabled: data.AlertsEnabled,
		LastUpdated:   data.LastUpdated,
	}
	if data.QuietStart != nil && data.QuietEnd != nil {
		device.QuietHours = &entity.QuietHours{
			Start: *data.QuietStart,
			End:   *data.QuietEnd,
		}
		if data.QuietTimezone != nil {
			device.QuietHours.Timezone = *data.QuietTimezone
		}
	}

	return device
}

// fromDeviceLocationDomain converts a domain DeviceLocation entity to a GORM DeviceLocationModel.
func fromDeviceLocationDomain(data *entity.DeviceLocation) *model.DeviceLocationModel {
	if data == nil {
		return nil
	}

	deviceM := &model.DeviceLocationModel{
		DeviceID:      data.DeviceID,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		PushToken:     data.PushToken,
		AlertRadiusKm: data.AlertRadiusKm,
		AlertsEnabled: data.AlertsEnabled,
		LastUpdated:   data.LastUpdated,
	}
	if data.QuietHours != nil {
		deviceM.QuietStart = &data.QuietHours.Start
		deviceM.QuietEnd = &data.QuietHours.End
		deviceM.QuietTimezone = &data.QuietHours.Timezone
	}

	return deviceM
}
