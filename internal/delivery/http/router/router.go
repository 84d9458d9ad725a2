// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"resto/config"
	"resto/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	RegistrationHandler *handler.RegistrationHandler
	GeocodeHandler      *handler.GeocodeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	registrationHandler *handler.RegistrationHandler
	geocodeHandler      *handler.GeocodeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		registrationHandler: params.RegistrationHandler,
		geocodeHandler:      params.GeocodeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.POST("/registrations", r.registrationHandler.Register)
	e.GET("/geocode", r.geocodeHandler.Lookup)

	// Stored logos are served straight from the upload directory.
	e.Static(r.cfg.Uploads.PublicPath, r.cfg.Uploads.Dir)
}
