package persistence

import (
	"io"
	"log/slog"
	"testing"

	"ufobeep/config"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_Memory(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{Driver: constants.StorageDriverMemory}}

	repos, err := NewRepositories(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.IsType(t, memory.NewSightingRepository(memory.NewStore()), repos.Sightings)
	assert.NotNil(t, repos.Witnesses)
	assert.NotNil(t, repos.Alerts)
	assert.NotNil(t, repos.Devices)
	assert.NotNil(t, repos.TxManager)
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{Driver: "sqlite"}}

	_, err := NewRepositories(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.ErrorContains(t, err, "sqlite")
}
