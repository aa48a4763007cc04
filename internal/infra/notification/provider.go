package notification

import (
	"context"
	"log/slog"

	"ufobeep/config"
	"ufobeep/internal/domain/service"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for NotificationGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationGateway picks FCM when Firebase is configured and the log gateway otherwise
func NewNotificationGateway(params GatewayParams) (service.NotificationGateway, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, alerts are logged only")

		return NewLogGateway(params.Logger), nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging gateway",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("dry_run", cfg.DryRun),
	)

	return NewFCMGateway(params.Ctx, cfg, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationGateway),
)
