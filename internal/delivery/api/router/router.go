// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voiceauth/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OAuthHandler *handler.OAuthHandler
	AuthHandler  *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	oauthHandler *handler.OAuthHandler
	authHandler  *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		oauthHandler: params.OAuthHandler,
		authHandler:  params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Static segments win over :provider in echo's router.
	oauthGroup := authGroup.Group("/oauth")
	{
		oauthGroup.GET("/providers", r.oauthHandler.Providers)
		oauthGroup.GET("/providers/:provider/status", r.oauthHandler.ProviderStatus)
		oauthGroup.GET("/callback", r.oauthHandler.Callback)
		oauthGroup.POST("/callback", r.oauthHandler.Callback)
		oauthGroup.GET("/:provider", r.oauthHandler.Begin)
	}
}
