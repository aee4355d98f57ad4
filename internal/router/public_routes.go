package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/handler"
)

// PublicHandlers bundles the handlers exposed without authentication.
type PublicHandlers struct {
	Banners      *handler.BannerHandler
	Gallery      *handler.GalleryHandler
	Team         *handler.TeamHandler
	Groups       *handler.GroupHandler
	Donations    *handler.DonationHandler
	Settings     *handler.SettingHandler
	Messages     *handler.MessageHandler
	Masses       *handler.MassHandler
	Pages        *handler.PageHandler
	Reservations *handler.ReservationHandler
}

// RegisterPublic registers the visitor-facing endpoints under /api.  Read
// endpoints go through the Redis response cache; the reservation endpoints
// are rate limited instead, because availability must stay fresh and the
// write endpoints are abuse targets.
func RegisterPublic(e *echo.Echo, h PublicHandlers, cache, limiter echo.MiddlewareFunc) {
	g := e.Group("/api")

	g.GET("/banners", h.Banners.ListPublic, cache)
	g.GET("/albums", h.Gallery.ListPublic, cache)
	g.GET("/albums/:id", h.Gallery.GetPublic, cache)
	g.GET("/team", h.Team.ListPublic, cache)
	g.GET("/groups", h.Groups.ListPublic, cache)
	g.GET("/donations", h.Donations.ListPublic, cache)
	g.GET("/settings", h.Settings.ListPublic, cache)
	g.GET("/mass-types", h.Masses.ListTypesPublic, cache)
	g.GET("/mass-schedules", h.Masses.ListSchedulesPublic, cache)
	g.GET("/pages", h.Pages.ListPublic, cache)
	g.GET("/pages/:slug", h.Pages.GetBySlug, cache)

	g.POST("/messages", h.Messages.Create, limiter)

	g.GET("/reservations/availability", h.Reservations.Availability, limiter)
	g.POST("/reservations/verify", h.Reservations.Verify, limiter)
	g.POST("/reservations", h.Reservations.Create, limiter)
}
