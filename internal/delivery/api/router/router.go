// Package router registers the routes of the callable API.
package router

import (
	"petkeeper/config"
	"petkeeper/internal/delivery/api/middleware"
	"petkeeper/internal/delivery/api/router/handler"
	"petkeeper/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router mounts.
type RouterParams struct {
	fx.In

	EventHandler   *handler.EventHandler
	StatsHandler   *handler.StatsHandler
	TokenHandler   *handler.TokenHandler
	InviteHandler  *handler.InviteHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.params.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.params.Metrics.Handler()))
	}

	// Every callable operation requires an authenticated caller
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.params.AuthMiddleware.Authenticate)

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.POST("", r.params.EventHandler.Notify)
		eventsGroup.POST("/:kind", r.params.EventHandler.NotifyByKind)
	}

	familyGroup := apiV1.Group("/family")
	{
		familyGroup.GET("/stats", r.params.StatsHandler.GetFamilyStats)
		familyGroup.GET("/qr", r.params.InviteHandler.GetFamilyQR)
	}

	apiV1.POST("/tokens/cleanup", r.params.TokenHandler.CleanupTokens)
}

// RegisterTestRoutes mounts /test when test routes are enabled
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.params.Config.TestRoutes == nil || !r.params.Config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.params.TestHandler.TestPublicEndpoint)
	testGroup.POST("/token", r.params.TestHandler.IssueDevToken)
	testGroup.GET("/auth", r.params.TestHandler.TestAuthMiddleware, r.params.AuthMiddleware.Authenticate)
}
