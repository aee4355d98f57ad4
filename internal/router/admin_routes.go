package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/handler"
	"github.com/dmolina/parroquia-api/internal/middleware"
)

// AdminHandlers bundles the handlers mounted behind session authentication.
type AdminHandlers struct {
	Banners      *handler.BannerHandler
	Gallery      *handler.GalleryHandler
	Team         *handler.TeamHandler
	Groups       *handler.GroupHandler
	Donations    *handler.DonationHandler
	Settings     *handler.SettingHandler
	Messages     *handler.MessageHandler
	Masses       *handler.MassHandler
	Slots        *handler.TimeSlotHandler
	Pages        *handler.PageHandler
	Reservations *handler.ReservationHandler
	Uploads      *handler.UploadHandler
	Stats        *handler.StatsHandler
}

// RegisterAdmin registers the management API under /api/admin.  Every route
// runs through full session verification; there is no partially trusted
// admin endpoint.
func RegisterAdmin(e *echo.Echo, cfg config.Config, h AdminHandlers) {
	g := e.Group("/api/admin")
	g.Use(middleware.SessionAuth(cfg.SessionSecret, cfg.SessionCookie))

	g.GET("/stats", h.Stats.Dashboard)
	g.POST("/uploads", h.Uploads.Upload)

	g.GET("/banners", h.Banners.ListAdmin)
	g.GET("/banners/:id", h.Banners.Get)
	g.POST("/banners", h.Banners.Create)
	g.PUT("/banners/:id", h.Banners.Update)
	g.DELETE("/banners/:id", h.Banners.Delete)

	g.GET("/albums", h.Gallery.ListAdmin)
	g.GET("/albums/:id", h.Gallery.Get)
	g.POST("/albums", h.Gallery.Create)
	g.PUT("/albums/:id", h.Gallery.Update)
	g.DELETE("/albums/:id", h.Gallery.Delete)
	g.POST("/albums/:id/images", h.Gallery.CreateImage)
	g.PUT("/album-images/:id", h.Gallery.UpdateImage)
	g.DELETE("/album-images/:id", h.Gallery.DeleteImage)

	g.GET("/team", h.Team.ListAdmin)
	g.GET("/team/:id", h.Team.Get)
	g.POST("/team", h.Team.Create)
	g.PUT("/team/:id", h.Team.Update)
	g.DELETE("/team/:id", h.Team.Delete)

	g.GET("/groups", h.Groups.ListAdmin)
	g.GET("/groups/:id", h.Groups.Get)
	g.POST("/groups", h.Groups.Create)
	g.PUT("/groups/:id", h.Groups.Update)
	g.DELETE("/groups/:id", h.Groups.Delete)

	g.GET("/donations", h.Donations.ListAdmin)
	g.GET("/donations/:id", h.Donations.Get)
	g.POST("/donations", h.Donations.Create)
	g.PUT("/donations/:id", h.Donations.Update)
	g.DELETE("/donations/:id", h.Donations.Delete)

	g.GET("/settings", h.Settings.ListAdmin)
	g.GET("/settings/:key", h.Settings.Get)
	g.POST("/settings", h.Settings.Upsert)
	g.PUT("/settings", h.Settings.BulkUpsert)
	g.DELETE("/settings/:key", h.Settings.Delete)

	g.GET("/messages", h.Messages.List)
	g.GET("/messages/:id", h.Messages.Get)
	g.PUT("/messages/:id/status", h.Messages.SetStatus)
	g.DELETE("/messages/:id", h.Messages.Delete)

	g.GET("/mass-types", h.Masses.ListTypesAdmin)
	g.GET("/mass-types/:id", h.Masses.GetType)
	g.POST("/mass-types", h.Masses.CreateType)
	g.PUT("/mass-types/:id", h.Masses.UpdateType)
	g.DELETE("/mass-types/:id", h.Masses.DeleteType)

	g.GET("/mass-schedules", h.Masses.ListSchedulesAdmin)
	g.GET("/mass-schedules/:id", h.Masses.GetSchedule)
	g.POST("/mass-schedules", h.Masses.CreateSchedule)
	g.PUT("/mass-schedules/:id", h.Masses.UpdateSchedule)
	g.DELETE("/mass-schedules/:id", h.Masses.DeleteSchedule)

	g.GET("/time-slots", h.Slots.List)
	g.GET("/time-slots/:id", h.Slots.Get)
	g.POST("/time-slots", h.Slots.Create)
	g.PUT("/time-slots/:id", h.Slots.Update)
	g.DELETE("/time-slots/:id", h.Slots.Delete)

	g.GET("/pages", h.Pages.ListAdmin)
	g.GET("/pages/:id", h.Pages.Get)
	g.POST("/pages", h.Pages.Create)
	g.PUT("/pages/:id", h.Pages.Update)
	g.DELETE("/pages/:id", h.Pages.Delete)

	g.GET("/reservations", h.Reservations.List)
	g.GET("/reservations/:id", h.Reservations.Get)
	g.PUT("/reservations/:id/status", h.Reservations.SetStatus)
	g.DELETE("/reservations/:id", h.Reservations.Delete)
}
