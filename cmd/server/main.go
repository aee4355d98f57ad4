package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/database"
	"github.com/dmolina/parroquia-api/internal/handler"
	"github.com/dmolina/parroquia-api/internal/middleware"
	"github.com/dmolina/parroquia-api/internal/queue"
	"github.com/dmolina/parroquia-api/internal/repository"
	"github.com/dmolina/parroquia-api/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the limiter and the response
	// cache into passthroughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and caching disabled")
	}
	limiter := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.PublicCache(config.LoadCacheConfig(), rdb)

	users := repository.NewUserRepo(db)
	banners := repository.NewBannerRepo(db)
	gallery := repository.NewGalleryRepo(db)
	team := repository.NewTeamRepo(db)
	groups := repository.NewGroupRepo(db)
	donations := repository.NewDonationRepo(db)
	settings := repository.NewSettingRepo(db)
	messages := repository.NewMessageRepo(db)
	masses := repository.NewMassRepo(db)
	slots := repository.NewTimeSlotRepo(db)
	pages := repository.NewPageRepo(db)
	reservations := repository.NewReservationRepo(db)

	auth := handler.NewAuthHandler(cfg, users)
	bannerH := handler.NewBannerHandler(cfg, banners)
	galleryH := handler.NewGalleryHandler(cfg, gallery)
	teamH := handler.NewTeamHandler(cfg, team)
	groupH := handler.NewGroupHandler(cfg, groups)
	donationH := handler.NewDonationHandler(cfg, donations)
	settingH := handler.NewSettingHandler(cfg, settings)
	messageH := handler.NewMessageHandler(cfg, messages)
	massH := handler.NewMassHandler(cfg, masses)
	slotH := handler.NewTimeSlotHandler(cfg, slots)
	pageH := handler.NewPageHandler(cfg, pages)
	reservationH := handler.NewReservationHandler(cfg, reservations, slots, masses)
	uploadH := handler.NewUploadHandler(cfg)
	statsH := handler.NewStatsHandler(cfg, reservations, messages)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     corsOrigins(),
		AllowCredentials: true,
	}))

	router.RegisterRoutes(e, cfg)
	router.RegisterAuth(e, auth, limiter)
	router.RegisterPublic(e, router.PublicHandlers{
		Banners:      bannerH,
		Gallery:      galleryH,
		Team:         teamH,
		Groups:       groupH,
		Donations:    donationH,
		Settings:     settingH,
		Messages:     messageH,
		Masses:       massH,
		Pages:        pageH,
		Reservations: reservationH,
	}, cache, limiter)
	router.RegisterAdmin(e, cfg, router.AdminHandlers{
		Banners:      bannerH,
		Gallery:      galleryH,
		Team:         teamH,
		Groups:       groupH,
		Donations:    donationH,
		Settings:     settingH,
		Messages:     messageH,
		Masses:       massH,
		Slots:        slotH,
		Pages:        pageH,
		Reservations: reservationH,
		Uploads:      uploadH,
		Stats:        statsH,
	})
	if dir := os.Getenv("ADMIN_DIR"); dir != "" {
		router.RegisterAdminPages(e, cfg, dir)
	}

	if cfg.RabbitURL != "" {
		go func() {
			if err := queue.StartReservationConsumer(cfg.RabbitURL); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// corsOrigins reads the comma-separated CORS_ORIGINS variable, defaulting
// to a permissive local setup.
func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
