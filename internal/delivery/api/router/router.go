// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ufobeep/config"
	"ufobeep/internal/delivery/api/middleware"
	"ufobeep/internal/delivery/api/router/handler"
	"ufobeep/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler   *handler.AlertHandler
	WitnessHandler *handler.WitnessHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler   *handler.AlertHandler
	witnessHandler *handler.WitnessHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	confirmLimiter *middleware.IPRateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:   params.AlertHandler,
		witnessHandler: params.WitnessHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
		confirmLimiter: middleware.NewIPRateLimiter(
			params.Config.Witness.ConfirmRatePerSecond,
			params.Config.Witness.ConfirmBurst,
		),
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Fanout routes are called by the sighting service, never by devices
	alertsGroup := e.Group("/alerts")
	alertsGroup.Use(r.authMiddleware.Authenticate)
	{
		alertsGroup.POST("/:sighting_id/dispatch", r.alertHandler.DispatchAlert,
			r.authMiddleware.RequireScope(constants.ScopeAlertsDispatch))
		alertsGroup.GET("/:sighting_id/fanout", r.alertHandler.GetFanout,
			r.authMiddleware.RequireScope(constants.ScopeAlertsRead))
	}

	// Public witness routes
	sightingsGroup := e.Group("/sightings")
	{
		sightingsGroup.POST("/:sighting_id/witness-confirm", r.witnessHandler.ConfirmWitness, r.confirmLimiter.Middleware)
		sightingsGroup.GET("/:sighting_id/witness-status/:device_id", r.witnessHandler.GetWitnessStatus)
		sightingsGroup.GET("/:sighting_id/witness-aggregation", r.witnessHandler.GetAggregation)
		sightingsGroup.GET("/:sighting_id/witness-heatmap", r.witnessHandler.GetHeatMap)
	}

	// Device registration is proxied by the device service
	devicesGroup := e.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireScope(constants.ScopeDevicesWrite))
	{
		devicesGroup.PUT("/:device_id/location", r.deviceHandler.UpdateLocation)
		devicesGroup.DELETE("/:device_id", r.deviceHandler.Deregister)
	}
}
