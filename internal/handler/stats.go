package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	Cfg          config.Config
	Reservations *repository.ReservationRepo
	Messages     *repository.MessageRepo
}

func NewStatsHandler(cfg config.Config, res *repository.ReservationRepo, msg *repository.MessageRepo) *StatsHandler {
	return &StatsHandler{Cfg: cfg, Reservations: res, Messages: msg}
}

type dashboardStats struct {
	Reservations        map[string]int `json:"reservations"`
	ReservationsTotal   int            `json:"reservations_total"`
	ReservationsPending int            `json:"reservations_pending"`
	Messages            map[string]int `json:"messages"`
	MessagesTotal       int            `json:"messages_total"`
	MessagesNew         int            `json:"messages_new"`
	GeneratedAt         time.Time      `json:"generated_at"`
}

// Dashboard aggregates reservation and message counts by status.
func (h *StatsHandler) Dashboard(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	resCounts, err := h.Reservations.CountByStatus(ctx)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	msgCounts, err := h.Messages.CountByStatus(ctx)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}

	out := dashboardStats{
		Reservations: resCounts,
		Messages:     msgCounts,
		GeneratedAt:  time.Now().UTC(),
	}
	for _, n := range resCounts {
		out.ReservationsTotal += n
	}
	out.ReservationsPending = resCounts[model.ReservationPending]
	for _, n := range msgCounts {
		out.MessagesTotal += n
	}
	out.MessagesNew = msgCounts[model.MessageNew]

	return ok(c, http.StatusOK, out)
}
