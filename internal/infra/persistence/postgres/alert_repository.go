package postgres

import (
	"context"
	"time"

	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dispatchInsertBatchSize = 100

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateFanout persists a fanout run summary.
func (repo *alertRepository) CreateFanout(ctx context.Context, fanout *entity.AlertFanout) error {
	fanoutM := fromFanoutDomain(fanout)

	if err := repo.db.WithContext(ctx).Create(fanoutM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert fanout")
	}

	fanout.CreatedAt = fanoutM.CreatedAt
	fanout.UpdatedAt = fanoutM.UpdatedAt

	return nil
}

// ListFanouts retrieves every fanout run for a sighting, oldest first.
func (repo *alertRepository) ListFanouts(ctx context.Context, sightingID uuid.UUID) ([]*entity.AlertFanout, error) {
	var fanoutModels []*model.AlertFanoutModel

	if err := repo.db.WithContext(ctx).
		Where("sighting_id = ?", sightingID).
		Order("created_at ASC").
		Find(&fanoutModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alert fanouts")
	}

	fanouts := make([]*entity.AlertFanout, 0, len(fanoutModels))
	for _, fanoutM := range fanoutModels {
		fanouts = append(fanouts, toFanoutDomain(fanoutM))
	}

	return fanouts, nil
}

// HasFanoutAtLevel reports whether a run at the given escalation level exists.
func (repo *alertRepository) HasFanoutAtLevel(ctx context.Context, sightingID uuid.UUID, level entity.EscalationLevel) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertFanoutModel{}).
		Where("sighting_id = ? AND escalation_level = ?", sightingID, string(level)).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check alert fanout level")
	}

	return count > 0, nil
}

// ClaimEscalation inserts the (sighting, level) claim; a conflicting insert means
// another confirmation got there first.
func (repo *alertRepository) ClaimEscalation(ctx context.Context, sightingID uuid.UUID, level entity.EscalationLevel) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.EscalationClaimModel{SightingID: sightingID, EscalationLevel: string(level)})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim escalation")
	}

	return result.RowsAffected == 1, nil
}

// ReleaseEscalation deletes the claim.
func (repo *alertRepository) ReleaseEscalation(ctx context.Context, sightingID uuid.UUID, level entity.EscalationLevel) error {
	if err := repo.db.WithContext(ctx).
		Where("sighting_id = ? AND escalation_level = ?", sightingID, string(level)).
		Delete(&model.EscalationClaimModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to release escalation claim")
	}

	return nil
}

// IncrementFanoutOutcome adds finished sends to a run's counters in one statement.
func (repo *alertRepository) IncrementFanoutOutcome(ctx context.Context, fanoutID uuid.UUID, delivered, failed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertFanoutModel{}).
		Where("id = ?", fanoutID).
		Updates(map[string]any{
			"delivered":  gorm.Expr("delivered + ?", delivered),
			"failed":     gorm.Expr("failed + ?", failed),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment alert fanout outcome")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFanoutNotFound
	}

	return nil
}

// CreateDispatchRecords inserts records in batches, skipping devices that already
// have a record for the sighting. The rows this call stored are read back by
// fanout id, which is unique to the calling run.
func (repo *alertRepository) CreateDispatchRecords(ctx context.Context, records []*entity.AlertDispatchRecord) ([]*entity.AlertDispatchRecord, error) {
	if len(records) == 0 {
		return []*entity.AlertDispatchRecord{}, nil
	}

	recordModels := make([]*model.AlertDispatchRecordModel, 0, len(records))
	for _, record := range records {
		recordModels = append(recordModels, fromDispatchRecordDomain(record))
	}

	db := repo.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sighting_id"}, {Name: "device_id"}},
		DoNothing: true,
	}).CreateInBatches(recordModels, dispatchInsertBatchSize).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create alert dispatch records")
	}

	var stored []*model.AlertDispatchRecordModel
	if err := db.
		Where("fanout_id = ?", records[0].FanoutID).
		Order("distance_km ASC").
		Order("device_id ASC").
		Find(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read back alert dispatch records")
	}

	result := make([]*entity.AlertDispatchRecord, 0, len(stored))
	for _, recordM := range stored {
		result = append(result, toDispatchRecordDomain(recordM))
	}

	return result, nil
}

// FindAlertedDeviceIDs returns the devices already holding a record for the sighting.
func (repo *alertRepository) FindAlertedDeviceIDs(ctx context.Context, sightingID uuid.UUID) (map[string]struct{}, error) {
	var deviceIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertDispatchRecordModel{}).
		Where("sighting_id = ?", sightingID).
		Pluck("device_id", &deviceIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerted devices")
	}

	alerted := make(map[string]struct{}, len(deviceIDs))
	for _, id := range deviceIDs {
		alerted[id] = struct{}{}
	}

	return alerted, nil
}

// UpdateDispatchStatus records the outcome of the latest attempt for one record.
func (repo *alertRepository) UpdateDispatchStatus(ctx context.Context, recordID uuid.UUID, status entity.DeliveryStatus, attempts int, lastError string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertDispatchRecordModel{}).
		Where("id = ?", recordID).
		Updates(map[string]any{
			"delivery_status": string(status),
			"attempts":        attempts,
			"last_error":      lastError,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update alert dispatch status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDispatchRecordNotFound
	}

	return nil
}

// toFanoutDomain converts a GORM AlertFanoutModel to a domain AlertFanout entity.
func toFanoutDomain(data *model.AlertFanoutModel) *entity.AlertFanout {
	if data == nil {
		return nil
	}

	return &entity.AlertFanout{
		ID:                    data.ID,
		SightingID:            data.SightingID,
		RadiusKmUsed:          data.RadiusKmUsed,
		TotalCandidates:       data.TotalCandidates,
		TotalAlerted:          data.TotalAlerted,
		SkippedRateLimited:    data.SkippedRateLimited,
		SkippedQuietHours:     data.SkippedQuietHours,
		SkippedOptedOut:       data.SkippedOptedOut,
		SkippedAlreadyAlerted: data.SkippedAlreadyAlerted,
		Delivered:             data.Delivered,
		Failed:                data.Failed,
		EscalationLevel:       entity.EscalationLevel(data.EscalationLevel),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromFanoutDomain converts a domain AlertFanout entity to a GORM AlertFanoutModel.
func fromFanoutDomain(data *entity.AlertFanout) *model.AlertFanoutModel {
	if data == nil {
		return nil
	}

	return &model.AlertFanoutModel{
		ID:                    data.ID,
		SightingID:            data.SightingID,
		EscalationLevel:       string(data.EscalationLevel),
		RadiusKmUsed:          data.RadiusKmUsed,
		TotalCandidates:       data.TotalCandidates,
		TotalAlerted:          data.TotalAlerted,
		SkippedRateLimited:    data.SkippedRateLimited,
		SkippedQuietHours:     data.SkippedQuietHours,
		SkippedOptedOut:       data.SkippedOptedOut,
		SkippedAlreadyAlerted: data.SkippedAlreadyAlerted,
		Delivered:             data.Delivered,
		Failed:                data.Failed,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// toDispatchRecordDomain converts a GORM AlertDispatchRecordModel to a domain AlertDispatchRecord entity.
func toDispatchRecordDomain(data *model.AlertDispatchRecordModel) *entity.AlertDispatchRecord {
	if data == nil {
		return nil
	}

	return &entity.AlertDispatchRecord{
		ID:             data.ID,
		FanoutID:       data.FanoutID,
		SightingID:     data.SightingID,
		DeviceID:       data.DeviceID,
		DispatchTime:   data.DispatchTime,
		DeliveryStatus: entity.DeliveryStatus(data.DeliveryStatus),
		DistanceKm:     data.DistanceKm,
		BearingDeg:     data.BearingDeg,
		Attempts:       data.Attempts,
		LastError:      data.LastError,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDispatchRecordDomain converts a domain AlertDispatchRecord entity to a GORM AlertDispatchRecordModel.
func fromDispatchRecordDomain(data *entity.AlertDispatchRecord) *model.AlertDispatchRecordModel {
	if data == nil {
		return nil
	}

	return &model.AlertDispatchRecordModel{
		ID:             data.ID,
		FanoutID:       data.FanoutID,
		SightingID:     data.SightingID,
		DeviceID:       data.DeviceID,
		DispatchTime:   data.DispatchTime,
		DeliveryStatus: string(data.DeliveryStatus),
		DistanceKm:     data.DistanceKm,
		BearingDeg:     data.BearingDeg,
		Attempts:       data.Attempts,
		LastError:      data.LastError,
		UpdatedAt:      data.UpdatedAt,
	}
}
