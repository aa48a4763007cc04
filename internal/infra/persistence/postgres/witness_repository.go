package postgres

import (
	"context"

	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// witnessRepository implements the repository.WitnessRepository interface.
type witnessRepository struct {
	db *gorm.DB
}

// NewWitnessRepository is the constructor for witnessRepository.
func NewWitnessRepository(db *gorm.DB) repository.WitnessRepository {
	return &witnessRepository{
		db: db,
	}
}

// UpsertWitness stores the latest confirmation for (sighting, device).
// The insert either creates the row or conflicts; on conflict the row is
// overwritten in place, so concurrent first submissions report created once.
func (repo *witnessRepository) UpsertWitness(ctx context.Context, witness *entity.WitnessConfirmation) (bool, error) {
	witnessM := fromWitnessDomain(witness)
	db := repo.db.WithContext(ctx)

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sighting_id"}, {Name: "device_id"}},
		DoNothing: true,
	}).Create(witnessM)
	if result.Error != nil {
		return false, repo.translateWriteError(result.Error)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	err := db.Model(&model.WitnessConfirmationModel{}).
		Where("sighting_id = ? AND device_id = ?", witnessM.SightingID, witnessM.DeviceID).
		Updates(map[string]any{
			"latitude":      witnessM.Latitude,
			"longitude":     witnessM.Longitude,
			"altitude_m":    witnessM.AltitudeM,
			"bearing_deg":   witnessM.BearingDeg,
			"distance_km":   witnessM.DistanceKm,
			"accuracy_m":    witnessM.AccuracyM,
			"still_visible": witnessM.StillVisible,
			"confirmed_at":  witnessM.ConfirmedAt,
		}).Error
	if err != nil {
		return false, repo.translateWriteError(err)
	}

	return false, nil
}

// FindWitness retrieves one device's confirmation of a sighting.
func (repo *witnessRepository) FindWitness(ctx context.Context, sightingID uuid.UUID, deviceID string) (*entity.WitnessConfirmation, error) {
	var witnessM model.WitnessConfirmationModel

	if err := repo.db.WithContext(ctx).
		Where("sighting_id = ? AND device_id = ?", sightingID, deviceID).
		First(&witnessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWitnessNotFound
		}

		return nil, errors.Wrap(err, "failed to find witness confirmation")
	}

	return toWitnessDomain(&witnessM), nil
}

// ListWitnesses retrieves confirmations for a sighting, newest first.
func (repo *witnessRepository) ListWitnesses(ctx context.Context, sightingID uuid.UUID, limit int) ([]*entity.WitnessConfirmation, error) {
	var witnessModels []*model.WitnessConfirmationModel

	query := repo.db.WithContext(ctx).
		Where("sighting_id = ?", sightingID).
		Order("confirmed_at DESC").
		Order("device_id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&witnessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list witness confirmations")
	}

	witnesses := make([]*entity.WitnessConfirmation, 0, len(witnessModels))
	for _, witnessM := range witnessModels {
		witnesses = append(witnesses, toWitnessDomain(witnessM))
	}

	return witnesses, nil
}

// CountWitnesses counts the distinct devices that confirmed a sighting.
func (repo *witnessRepository) CountWitnesses(ctx context.Context, sightingID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WitnessConfirmationModel{}).
		Where("sighting_id = ?", sightingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count witness confirmations")
	}

	return int(count), nil
}

func (repo *witnessRepository) translateWriteError(err error) error {
	if isForeignKeyConstraintViolation(err) {
		return repository.ErrSightingNotFound
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidLocation.WrapMessage("witness location out of range")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to upsert witness confirmation")
}

// toWitnessDomain converts a GORM WitnessConfirmationModel to a domain WitnessConfirmation entity.
func toWitnessDomain(data *model.WitnessConfirmationModel) *entity.WitnessConfirmation {
	if data == nil {
		return nil
	}

	return &entity.WitnessConfirmation{
		SightingID: data.SightingID,
		DeviceID:   data.DeviceID,
		Location: entity.GeoLocation{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			AltitudeM: data.AltitudeM,
		},
		BearingDeg:   data.BearingDeg,
		DistanceKm:   data.DistanceKm,
		AccuracyM:    data.AccuracyM,
		StillVisible: data.StillVisible,
		ConfirmedAt:  data.ConfirmedAt,
	}
}

// fromWitnessDomain converts a domain WitnessConfirmation entity to a GORM WitnessConfirmationModel.
func fromWitnessDomain(data *entity.WitnessConfirmation) *model.WitnessConfirmationModel {
	if data == nil {
		return nil
	}

	return &model.WitnessConfirmationModel{
		SightingID:   data.SightingID,
		DeviceID:     data.DeviceID,
		Latitude:     data.Location.Latitude,
		Longitude:    data.Location.Longitude,
		AltitudeM:    data.Location.AltitudeM,
		BearingDeg:   data.BearingDeg,
		DistanceKm:   data.DistanceKm,
		AccuracyM:    data.AccuracyM,
		StillVisible: data.StillVisible,
		ConfirmedAt:  data.ConfirmedAt,
	}
}
