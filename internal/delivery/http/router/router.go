// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"snsbridge/internal/delivery/http/middleware"
	"snsbridge/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	InternalKey         *middleware.InternalKeyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	internalKey         *middleware.InternalKeyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		internalKey:         params.InternalKey,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	snsGroup := e.Group("/amazon-sns")
	{
		// Device registration routes require an authenticated user
		snsGroup.POST("/subscribe", r.registrationHandler.Subscribe, r.authMiddleware.Authenticate)
		snsGroup.POST("/disable", r.registrationHandler.Disable, r.authMiddleware.Authenticate)

		// Notification events come from the host application, not end users
		snsGroup.POST("/notify", r.notificationHandler.Notify, r.internalKey.Require)
	}
}
