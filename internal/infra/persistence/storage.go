package persistence

import (
	"log/slog"

	"ufobeep/config"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/errors"
	"ufobeep/internal/infra/persistence/memory"
	"ufobeep/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params selects the storage driver from config
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full repository set for one driver
type Repositories struct {
	fx.Out

	Sightings repository.SightingRepository
	Witnesses repository.WitnessRepository
	Alerts    repository.AlertRepository
	Devices   repository.DeviceLocationRepository
	TxManager repository.TransactionManager
}

// NewRepositories builds the repositories for the configured driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Sightings: postgres.NewSightingRepository(db),
			Witnesses: postgres.NewWitnessRepository(db),
			Alerts:    postgres.NewAlertRepository(db),
			Devices:   postgres.NewDeviceLocationRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	case constants.StorageDriverMemory:
		params.Logger.Warn("[Storage] Using in-memory repositories; data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Sightings: memory.NewSightingRepository(store),
			Witnesses: memory.NewWitnessRepository(store),
			Alerts:    memory.NewAlertRepository(store),
			Devices:   memory.NewDeviceLocationRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver %q", driver)
	}
}

// Module provides the repositories
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
