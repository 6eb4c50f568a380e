// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"melospizza/internal/delivery/http/middleware"
	"melospizza/internal/delivery/http/router/handler"
	"melospizza/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")
	{
		// Public routes
		api.POST("/register", r.authHandler.Register)
		api.POST("/login", r.authHandler.Login)

		// Routes that require a valid access token
		api.POST("/orders", r.orderHandler.CreateOrder, r.authMiddleware.Authenticate)
		api.GET("/users/:userId/orders", r.orderHandler.GetUserOrders, r.authMiddleware.Authenticate)
	}
}
