// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	ItemHandler    *handler.ItemHandler
	SearchHandler  *handler.SearchHandler
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	itemHandler    *handler.ItemHandler
	searchHandler  *handler.SearchHandler
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		itemHandler:    params.ItemHandler,
		searchHandler:  params.SearchHandler,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application. Authentication
// is decided once by the gate; handlers read its decision from the context.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/authFunction")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	api := e.Group("/api")

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", r.authHandler.Status)
		usersGroup.POST("", r.authHandler.Logout)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.GET("/photo", r.profileHandler.GetProfilePhoto)
	}

	itemsGroup := api.Group("/items")
	{
		itemsGroup.POST("", r.itemHandler.CreateItem)
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/:category/:id", r.itemHandler.GetItem)
		itemsGroup.GET("/:category/:id/file", r.itemHandler.GetBookFile)
		itemsGroup.GET("/:category/:id/qr", r.itemHandler.GetQRCode)
	}

	api.GET("/image/:id", r.itemHandler.GetImage)
	api.POST("/smart-search", r.searchHandler.Search)
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
