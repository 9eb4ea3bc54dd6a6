// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatepass/internal/delivery/http/middleware"
	"gatepass/internal/delivery/http/router/handler"
	"gatepass/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BroadcastHandler  *handler.BroadcastHandler
	PreferenceHandler *handler.PreferenceHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	broadcastHandler  *handler.BroadcastHandler
	preferenceHandler *handler.PreferenceHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		broadcastHandler:  params.BroadcastHandler,
		preferenceHandler: params.PreferenceHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Preference and device routes for any authenticated user
	userGroup := api.Group("/users/me")
	{
		userGroup.GET("/notifications/preference", r.preferenceHandler.GetPreference)
		userGroup.PUT("/notifications/preference", r.preferenceHandler.UpdatePreference)
	}
	api.POST("/devices/token", r.deviceHandler.ReportToken)

	// Broadcast routes require the admin role
	adminGroup := api.Group("/notifications")
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/broadcast", r.broadcastHandler.SendBroadcast)
		adminGroup.GET("/broadcast/status", r.broadcastHandler.GetBroadcastStatus)
	}
}
