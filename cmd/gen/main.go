package main

import (
	"ufobeep/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the alert tables into persistence/postgres/query.
func main() {
	models := []any{
		model.SightingModel{},
		model.WitnessConfirmationModel{},
		model.AlertFanoutModel{},
		model.AlertDispatchRecordModel{},
		model.EscalationClaimModel{},
		model.DeviceLocationModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
