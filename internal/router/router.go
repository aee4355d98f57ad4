// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/handler"
	"github.com/dmolina/parroquia-api/internal/middleware"
)

// RegisterRoutes registers the routes that carry no authentication and no
// caching: the health check and the uploaded-file static tree.
func RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/healthz", handler.Health)
	e.Static("/uploads", cfg.UploadDir)
}

// RegisterAuth registers the session endpoints.  Login is rate limited to
// slow down credential stuffing; logout and session introspection are not.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login, limiter)
	g.POST("/logout", a.Logout)
	g.GET("/session", a.Session)
}

// RegisterAdminPages guards the static admin panel shell.  The guard only
// checks cookie presence; real authorization happens on the API routes.
func RegisterAdminPages(e *echo.Echo, cfg config.Config, dir string) {
	g := e.Group("/admin", middleware.AdminPageGuard(cfg.SessionCookie))
	g.Static("", dir)
}
