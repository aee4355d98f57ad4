package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/repository"
)

// TimeSlotHandler serves the admin time-slot configuration endpoints.
type TimeSlotHandler struct {
	Cfg   config.Config
	Slots *repository.TimeSlotRepo
}

func NewTimeSlotHandler(cfg config.Config, r *repository.TimeSlotRepo) *TimeSlotHandler {
	return &TimeSlotHandler{Cfg: cfg, Slots: r}
}

func (h *TimeSlotHandler) List(c echo.Context) error {
	dayType := strings.TrimSpace(c.QueryParam("day_type"))
	if dayType != "" && !validDayType(dayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Slots.List(ctx, false, dayType)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, items)
}

func (h *TimeSlotHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Slots.Get(ctx, id)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, t)
}

type timeSlotCreateReq struct {
	DayType         string  `json:"day_type" validate:"required"`
	Time            string  `json:"time" validate:"required"`
	Location        *string `json:"location"`
	MaxReservations int     `json:"max_reservations" validate:"gte=1"`
}

func (h *TimeSlotHandler) Create(c echo.Context) error {
	var req timeSlotCreateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Tipo de día, hora y capacidad (mínimo 1) son obligatorios")
	}
	if !validDayType(req.DayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	t := model.TimeSlot{
		DayType:         req.DayType,
		Time:            strings.TrimSpace(req.Time),
		Location:        req.Location,
		MaxReservations: req.MaxReservations,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Slots.Create(ctx, &t); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusCreated, t)
}

type timeSlotUpdateReq struct {
	DayType         *string `json:"day_type"`
	Time            *string `json:"time"`
	Location        *string `json:"location"`
	MaxReservations *int    `json:"max_reservations"`
	DisplayOrder    *int    `json:"display_order"`
	IsActive        *bool   `json:"is_active"`
}

func (h *TimeSlotHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	var req timeSlotUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if req.DayType != nil && !validDayType(*req.DayType) {
		return badRequest(c, "Tipo de día inválido")
	}
	if req.MaxReservations != nil && *req.MaxReservations < 1 {
		return badRequest(c, "La capacidad mínima es 1")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Slots.Update(ctx, id, repository.TimeSlotUpdate{
		DayType:         req.DayType,
		Time:            req.Time,
		Location:        req.Location,
		MaxReservations: req.MaxReservations,
		DisplayOrder:    req.DisplayOrder,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, t)
}

func (h *TimeSlotHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Identificador inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Slots.Delete(ctx, id); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	return ok(c, http.StatusOK, map[string]string{"message": "Registro eliminado"})
}
